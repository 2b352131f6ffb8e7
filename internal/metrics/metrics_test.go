package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Record(t *testing.T) {
	m := New()

	m.ObserveHTTP("/quiz", "GET", 200, 5*time.Millisecond)
	m.ObserveHTTP("/quiz", "GET", 200, 5*time.Millisecond)
	m.QuizCompleted("Good Job!")
	m.LibrarySearch(3)
	m.ClassroomControl("mute")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/quiz", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.quizCompleted.WithLabelValues("Good Job!")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.classroomEvent.WithLabelValues("mute")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.librarySearch))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTP("/", "GET", 200, time.Millisecond)
		m.QuizCompleted("Excellent!")
		m.LibrarySearch(0)
		m.ClassroomControl("audio")
	})
}
