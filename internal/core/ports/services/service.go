package services

// ServiceContainer bundles every service implementation handed to the HTTP
// layer at startup.
type ServiceContainer struct {
	Auth       AuthSvcFacade
	User       UserSvcFacade
	Moderation ModerationSvcFacade
	Token      TokenSvcFacade
}
