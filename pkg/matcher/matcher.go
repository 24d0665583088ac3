// Package matcher ranks event attendees by embedding similarity and persists
// the resulting matches.
package matcher

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/getmingle/mingle/internal"
	"github.com/getmingle/mingle/pkg/models"
)

var log = internal.GetLogger()

const (
	// WhyMeetFallback is used when two attendees share no hobbies.
	WhyMeetFallback = "Complementary roles and interests."
	// DiveDeeper is the fixed follow-up prompt attached to every match.
	DiveDeeper = "Discuss projects and collaboration opportunities."
)

type Matcher struct {
	store            models.BackendStore
	topK             int
	maxSharedHobbies int
}

func New(store models.BackendStore, topK, maxSharedHobbies int) *Matcher {
	return &Matcher{
		store:            store,
		topK:             topK,
		maxSharedHobbies: maxSharedHobbies,
	}
}

type scoredProfile struct {
	profile    models.Profile
	similarity float64
}

// ComputeForUser scores the event's other attendees against the user's
// embedding, persists the top-K as match rows, and returns the persisted
// matches. A candidate whose embedding is absent or undecodable is skipped.
// A match row that fails to insert is skipped silently; the row is simply
// omitted from the result.
func (m *Matcher) ComputeForUser(ctx context.Context, userID, eventID uuid.UUID) ([]models.MatchResult, error) {
	attendeeIDs, err := m.store.GetAttendeeIDs(ctx, eventID)
	if err != nil {
		return nil, err
	}

	candidateIDs := make([]uuid.UUID, 0, len(attendeeIDs))
	for _, id := range attendeeIDs {
		if id != userID {
			candidateIDs = append(candidateIDs, id)
		}
	}

	me, err := m.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	meVec, ok := models.DecodeVector(me.Embedding)
	if !ok {
		return nil, models.NewBadRequestError("user embedding missing, generate embedding first")
	}

	var candidates []models.Profile
	if len(candidateIDs) > 0 {
		candidates, err = m.store.GetProfiles(ctx, candidateIDs)
		if err != nil {
			return nil, err
		}
	}

	scored := make([]scoredProfile, 0, len(candidates))
	for _, candidate := range candidates {
		vec, ok := models.DecodeVector(candidate.Embedding)
		if !ok || len(vec) == 0 {
			continue
		}
		scored = append(scored, scoredProfile{
			profile:    candidate,
			similarity: CosineSimilarity(meVec, vec),
		})
	}

	// Stable sort keeps equal scores in roster order, so repeated runs over
	// the same data rank deterministically.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].similarity > scored[j].similarity
	})

	top := scored
	if len(top) > m.topK {
		top = top[:m.topK]
	}

	// Clear the user's prior matches for this event so recomputation
	// replaces them rather than accumulating duplicates.
	if err := m.store.DeleteMatchesForUser(ctx, userID, eventID); err != nil {
		return nil, err
	}

	results := make([]models.MatchResult, 0, len(top))
	for _, item := range top {
		overlap := m.sharedHobbies(me.Hobbies, item.profile.Hobbies)
		whyMeet := WhyMeetFallback
		if len(overlap) > 0 {
			whyMeet = fmt.Sprintf("You share interests in %s", strings.Join(overlap, ", "))
		}

		match := &models.Match{
			UserID:         userID,
			MatchUserID:    item.profile.ID,
			EventID:        eventID,
			WhyMeet:        whyMeet,
			ThingsInCommon: strings.Join(overlap, ", "),
			DiveDeeper:     DiveDeeper,
		}
		if err := m.store.InsertMatch(ctx, match); err != nil {
			log.Warnf("skipping match %s -> %s: insert failed: %v", userID, item.profile.ID, err)
			continue
		}

		results = append(results, models.MatchResult{
			MatchUserID:    item.profile.ID,
			Similarity:     item.similarity,
			WhyMeet:        whyMeet,
			ThingsInCommon: match.ThingsInCommon,
			DiveDeeper:     DiveDeeper,
		})
	}

	return results, nil
}

// RecomputeEvent recomputes matches for every attendee of the event,
// sequentially in roster order, and returns the total number of matches
// persisted.
func (m *Matcher) RecomputeEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	attendeeIDs, err := m.store.GetAttendeeIDs(ctx, eventID)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, userID := range attendeeIDs {
		results, err := m.ComputeForUser(ctx, userID, eventID)
		if err != nil {
			return 0, err
		}
		total += len(results)
	}
	return total, nil
}

// sharedHobbies returns the first maxSharedHobbies entries of mine, in
// order, that also appear in theirs.
func (m *Matcher) sharedHobbies(mine, theirs []string) []string {
	theirSet := make(map[string]struct{}, len(theirs))
	for _, h := range theirs {
		theirSet[h] = struct{}{}
	}

	var overlap []string
	for _, h := range mine {
		if _, ok := theirSet[h]; ok {
			overlap = append(overlap, h)
			if len(overlap) == m.maxSharedHobbies {
				break
			}
		}
	}
	return overlap
}
