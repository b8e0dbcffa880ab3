package directory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/KirkDiggler/matchday/internal/common/clock"
	"github.com/KirkDiggler/matchday/internal/models"
	profileRepo "github.com/KirkDiggler/matchday/internal/repositories/profile"
)

// service implements the Service interface
type service struct {
	profileRepo profileRepo.Repository
	clock       clock.Clock
	cacheSize   int

	// Bounded read-through cache, oldest-inserted-evicted-first. Profiles
	// only change through SaveProfile, so entries carry no TTL.
	mu         sync.Mutex
	cache      map[int64]*models.User
	cacheOrder []int64
}

// NewService creates a new directory service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ProfileRepo == nil {
		return nil, ErrNilProfileRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}

	return &service{
		profileRepo: cfg.ProfileRepo,
		clock:       cfg.Clock,
		cacheSize:   cacheSize,
		cache:       make(map[int64]*models.User),
	}, nil
}

// GetProfile returns a user's remembered profile, reading through the cache
func (s *service) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	if input == nil || input.UserID == 0 {
		return nil, errors.New("input and user ID cannot be empty")
	}

	if user := s.cacheGet(input.UserID); user != nil {
		return &GetProfileOutput{User: user}, nil
	}

	user, err := s.profileRepo.GetProfile(ctx, &profileRepo.GetProfileInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	s.cachePut(user)

	return &GetProfileOutput{User: user}, nil
}

// SaveProfile persists a user's profile and refreshes the cache entry
func (s *service) SaveProfile(ctx context.Context, input *SaveProfileInput) (*SaveProfileOutput, error) {
	if input == nil || input.UserID == 0 {
		return nil, errors.New("input and user ID cannot be empty")
	}

	lastName := strings.TrimSpace(input.LastName)
	if lastName == "" {
		return nil, ErrEmptyLastName
	}

	user := &models.User{
		UserID:    input.UserID,
		LastName:  lastName,
		Team:      input.Team,
		IsGoalie:  input.IsGoalie,
		UpdatedAt: s.clock.Now(),
	}

	err := s.profileRepo.SaveProfile(ctx, &profileRepo.SaveProfileInput{
		User: user,
	})
	if err != nil {
		return nil, err
	}

	s.cachePut(user)

	return &SaveProfileOutput{User: user}, nil
}

func (s *service) cacheGet(userID int64) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache[userID]
}

func (s *service) cachePut(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.cache[user.UserID]; !exists {
		if len(s.cacheOrder) >= s.cacheSize {
			oldest := s.cacheOrder[0]
			s.cacheOrder = s.cacheOrder[1:]
			delete(s.cache, oldest)
		}
		s.cacheOrder = append(s.cacheOrder, user.UserID)
	}

	s.cache[user.UserID] = user
}
