package common

import (
	"time"

	"github.com/sirupsen/logrus"
)

type TimeTracker struct {
	label string
	t     time.Time
}

func NewTimer(label string) TimeTracker {
	return TimeTracker{
		label: label,
		t:     time.Now(),
	}
}

func (t TimeTracker) Close() {
	logrus.Debugf("elapsed time for %v : %v (ms)", t.label, time.Since(t.t).Milliseconds())
}
