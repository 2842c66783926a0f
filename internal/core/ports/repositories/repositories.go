package repositories

// RepositoryContainer bundles every repository implementation handed to the
// service layer at startup.
type RepositoryContainer struct {
	User       UserRepositoryFacade
	Session    SessionRepository
	Moderation ModerationRepository
	Monitoring MonitoringRepository
}
