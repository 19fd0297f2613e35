package jobs

import (
	"context"
	"log"
	"time"

	"pet-care-server/repository"
)

// SessionCleanupJob purges expired sessions from the session store
type SessionCleanupJob struct {
	store    repository.SessionStore
	interval time.Duration
	stopChan chan bool
}

// NewSessionCleanupJob creates a new session cleanup job
func NewSessionCleanupJob(store repository.SessionStore, interval time.Duration) *SessionCleanupJob {
	return &SessionCleanupJob{
		store:    store,
		interval: interval,
		stopChan: make(chan bool),
	}
}

// Start begins the cleanup job
func (j *SessionCleanupJob) Start() {
	go j.run()
	log.Println("🚀 Session cleanup job started")
}

// Stop stops the cleanup job
func (j *SessionCleanupJob) Stop() {
	j.stopChan <- true
	log.Println("🛑 Session cleanup job stopped")
}

// run executes the cleanup job
func (j *SessionCleanupJob) run() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.purgeExpiredSessions()
		case <-j.stopChan:
			return
		}
	}
}

// purgeExpiredSessions deletes sessions past their expiry
func (j *SessionCleanupJob) purgeExpiredSessions() {
	purged, err := j.store.DeleteExpired(context.Background())
	if err != nil {
		log.Printf("❌ Error purging expired sessions: %v", err)
		return
	}

	if purged > 0 {
		log.Printf("⏰ Purged %d expired sessions", purged)
	}
}
