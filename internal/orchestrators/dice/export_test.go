package dice

// SessionCount reports how many session logs the service holds in memory
func SessionCount(s Service) int {
	o := s.(*orchestrator)
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.sessions)
}
