package service

import (
	"context"
	"fmt"

	"github.com/lshigami/ShambaQuest/config"
	"github.com/lshigami/ShambaQuest/internal/model"
	"github.com/lshigami/ShambaQuest/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// BadgeAwarder grants XP-milestone badges. Awarding is best-effort: it
// never returns an error to the submission pipeline.
type BadgeAwarder interface {
	// AwardEligible grants every badge whose requirement newTotalXP meets and
	// the user does not hold yet, returning the newly granted names in
	// ascending requirement order.
	AwardEligible(ctx context.Context, userID string, newTotalXP int) []string
	// SeedCatalog makes sure every configured badge exists in the store.
	SeedCatalog(ctx context.Context) error
}

type badgeAwarder struct {
	badgeRepo  repository.BadgeRepository
	thresholds []config.BadgeThreshold
}

func NewBadgeAwarder(badgeRepo repository.BadgeRepository, cfg *config.Config) BadgeAwarder {
	return &badgeAwarder{badgeRepo: badgeRepo, thresholds: cfg.Badges.Badges}
}

func (a *badgeAwarder) AwardEligible(ctx context.Context, userID string, newTotalXP int) []string {
	newBadges := []string{}

	held, catalog, err := a.loadBadgeState(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("AwardEligible: could not read badge state, awarding nothing")
		return newBadges
	}

	for _, threshold := range a.thresholds {
		if newTotalXP < threshold.XPRequirement || held[threshold.Name] {
			continue
		}
		badge, ok := catalog[threshold.Name]
		if !ok {
			log.Warn().Str("badge", threshold.Name).Msg("AwardEligible: badge missing from catalog table, skipping")
			continue
		}

		granted, err := a.badgeRepo.Grant(ctx, userID, badge.ID)
		if err != nil {
			log.Error().Err(fmt.Errorf("%w: %w", ErrBadgeInsert, err)).Str("userID", userID).Str("badge", threshold.Name).Msg("AwardEligible: insert failed, continuing")
			continue
		}
		if !granted {
			// A concurrent submission got there first.
			log.Debug().Str("userID", userID).Str("badge", threshold.Name).Msg("AwardEligible: badge already granted")
			continue
		}
		held[threshold.Name] = true
		newBadges = append(newBadges, threshold.Name)
	}

	if len(newBadges) > 0 {
		log.Info().Str("userID", userID).Strs("badges", newBadges).Int("totalXP", newTotalXP).Msg("AwardEligible: badges granted")
	}
	return newBadges
}

// loadBadgeState reads the user's held badge names and the catalog
// concurrently.
func (a *badgeAwarder) loadBadgeState(ctx context.Context, userID string) (map[string]bool, map[string]model.Badge, error) {
	var heldNames []string
	var badges []model.Badge

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		names, err := a.badgeRepo.HeldBadgeNames(gctx, userID)
		if err != nil {
			return fmt.Errorf("%w: current badges: %w", ErrBadgeQuery, err)
		}
		heldNames = names
		return nil
	})
	g.Go(func() error {
		list, err := a.badgeRepo.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("%w: catalog: %w", ErrBadgeQuery, err)
		}
		badges = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	held := make(map[string]bool, len(heldNames))
	for _, name := range heldNames {
		held[name] = true
	}
	catalog := make(map[string]model.Badge, len(badges))
	for _, b := range badges {
		catalog[b.Name] = b
	}
	return held, catalog, nil
}

func (a *badgeAwarder) SeedCatalog(ctx context.Context) error {
	badges := make([]model.Badge, 0, len(a.thresholds))
	for _, t := range a.thresholds {
		badges = append(badges, model.Badge{
			Name:          t.Name,
			Description:   t.Description,
			XPRequirement: t.XPRequirement,
		})
	}
	if err := a.badgeRepo.UpsertCatalog(ctx, badges); err != nil {
		return fmt.Errorf("seed badge catalog: %w", err)
	}
	log.Info().Int("badges", len(badges)).Msg("Badge catalog seeded")
	return nil
}
