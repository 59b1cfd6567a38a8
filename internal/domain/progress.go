package domain

import (
	"time"

	"github.com/google/uuid"
)

// LearningProgress tracks how many words the user has learned and their
// daily learning streak.
type LearningProgress struct {
	WordsLearned    int
	CurrentStreak   int
	LastStreakCheck *time.Time
	LearnedWordIDs  map[uuid.UUID]struct{}
}

// HasLearned reports whether the word was already counted.
func (p *LearningProgress) HasLearned(wordID uuid.UUID) bool {
	_, ok := p.LearnedWordIDs[wordID]
	return ok
}

// RecordLearned counts wordID as learned at now and advances the streak.
// It returns false when the word had already been counted; progress is then
// left untouched.
//
// Streak rules: the first learned word starts a streak of 1; another word on
// the same day keeps it; a word on the day after the last check extends it;
// any longer gap restarts it at 1.
func (p *LearningProgress) RecordLearned(wordID uuid.UUID, now time.Time, loc *time.Location) bool {
	if p.HasLearned(wordID) {
		return false
	}
	if p.LearnedWordIDs == nil {
		p.LearnedWordIDs = make(map[uuid.UUID]struct{})
	}
	p.LearnedWordIDs[wordID] = struct{}{}
	p.WordsLearned++

	if p.LastStreakCheck == nil {
		p.CurrentStreak = 1
		p.LastStreakCheck = &now
		return true
	}

	switch CalendarDaysBetween(*p.LastStreakCheck, now, loc) {
	case 0:
		// same day: streak already counted
	case 1:
		p.CurrentStreak++
		p.LastStreakCheck = &now
	default:
		p.CurrentStreak = 1
		p.LastStreakCheck = &now
	}
	return true
}

// ApplyMaintenance resets the streak to zero when the last learned word is
// older than yesterday.
func (p *LearningProgress) ApplyMaintenance(now time.Time, loc *time.Location) {
	if p.LastStreakCheck == nil {
		return
	}
	days := CalendarDaysBetween(*p.LastStreakCheck, now, loc)
	if days != 0 && days != 1 {
		p.CurrentStreak = 0
	}
}
