package vocab

import (
	"testing"
	"time"
)

func TestDifficulty_Unseen(t *testing.T) {
	if got := Difficulty(ItemStats{}, time.Now()); got != 5.0 {
		t.Errorf("Difficulty(unseen) = %v, want 5.0", got)
	}
}

func TestDifficulty_OrdersByAccuracy(t *testing.T) {
	now := time.Now()
	weak := Difficulty(ItemStats{Attempts: 10, Wrong: 8, LastSeen: now}, now)
	strong := Difficulty(ItemStats{Attempts: 10, Wrong: 1, LastSeen: now}, now)
	if weak <= strong {
		t.Errorf("weak (%v) should score above strong (%v)", weak, strong)
	}
}

func TestDifficulty_StreakEases(t *testing.T) {
	now := time.Now()
	base := ItemStats{Attempts: 10, Wrong: 5, LastSeen: now}
	streaky := base
	streaky.Streak = 4
	if Difficulty(streaky, now) >= Difficulty(base, now) {
		t.Error("a correct streak should lower difficulty")
	}
}

func TestDifficulty_RevealsHarden(t *testing.T) {
	now := time.Now()
	base := ItemStats{Attempts: 10, Wrong: 5, LastSeen: now}
	revealed := base
	revealed.Reveals = 3
	if Difficulty(revealed, now) <= Difficulty(base, now) {
		t.Error("reveals should raise difficulty")
	}
}

func TestDifficulty_StalenessBump(t *testing.T) {
	now := time.Now()
	fresh := ItemStats{Attempts: 10, Wrong: 5, LastSeen: now}
	stale := fresh
	stale.LastSeen = now.Add(-10 * 24 * time.Hour)

	freshD := Difficulty(fresh, now)
	staleD := Difficulty(stale, now)
	if staleD <= freshD {
		t.Errorf("stale (%v) should score above fresh (%v)", staleD, freshD)
	}
	// The recency bump is capped at 1.0.
	if staleD-freshD > 1.0+1e-9 {
		t.Errorf("staleness bump %v exceeds cap", staleD-freshD)
	}
}

func TestDifficulty_Floor(t *testing.T) {
	now := time.Now()
	s := ItemStats{Attempts: 100, Wrong: 0, Streak: 50, LastSeen: now}
	if got := Difficulty(s, now); got < 0.1 {
		t.Errorf("Difficulty = %v, want >= 0.1", got)
	}
}
