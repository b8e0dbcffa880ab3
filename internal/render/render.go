// Package render builds the outward attendance summary text. Rendering is a
// pure function of the target date and the response set so identical inputs
// produce byte-identical output, which the publisher relies on to detect
// no-op edits.
package render

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/matchday/internal/models"
)

const (
	headerFormat = "Среда бобры 🦫 %s 20:30 ❗️❗️❗️❗️❗️❗️"

	titleYes     = "Я буду хоккеяги"
	titleMaybe   = "Пока не определился"
	titleNo      = "Не смогу пойти, сорри"
	titleGoalies = "Вратари 🥅"

	emptyPlaceholder = "—"
)

// Summary renders the full attendance message for a session. Responses keep
// their relative order within each status block, first-to-respond first.
// Attending goalies are pulled into their own block and left out of the
// team tally.
func Summary(targetDate string, responses []*models.Response) string {
	var yes, maybe, no, goalies []*models.Response
	for _, resp := range responses {
		switch resp.Status {
		case models.StatusYes:
			if resp.IsGoalie {
				goalies = append(goalies, resp)
			} else {
				yes = append(yes, resp)
			}
		case models.StatusMaybe:
			maybe = append(maybe, resp)
		case models.StatusNo:
			no = append(no, resp)
		}
	}

	blocks := []string{
		fmt.Sprintf(headerFormat, targetDate),
		statusBlock(titleYes, yes),
		statusBlock(titleMaybe, maybe),
		statusBlock(titleNo, no),
	}
	if len(goalies) > 0 {
		blocks = append(blocks, statusBlock(titleGoalies, goalies))
	}
	blocks = append(blocks, teamTally(yes))

	return strings.Join(blocks, "\n\n")
}

func statusBlock(title string, responses []*models.Response) string {
	if len(responses) == 0 {
		return title + "\n" + emptyPlaceholder
	}

	var b strings.Builder
	b.WriteString(title)
	for i, resp := range responses {
		b.WriteString(fmt.Sprintf("\n%d. %s", i+1, playerLine(resp)))
	}
	return b.String()
}

func playerLine(resp *models.Response) string {
	if resp.Team != "" {
		return fmt.Sprintf("%s (%s) - %s", resp.LastName, resp.Team.Display(), resp.Status)
	}
	return fmt.Sprintf("%s - %s", resp.LastName, resp.Status)
}

func teamTally(yes []*models.Response) string {
	counts := make(map[models.Team]int)
	for _, resp := range yes {
		counts[resp.Team]++
	}

	return fmt.Sprintf("Игроков команды \"%s\" будет на игре - %d\nИгроков команды \"%s\" будет на игре - %d",
		models.TeamArmada.Display(), counts[models.TeamArmada],
		models.TeamKabany.Display(), counts[models.TeamKabany])
}
