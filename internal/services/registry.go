package services

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService        AuthService
	JobService         JobService
	ApplicationService ApplicationService
	MessageService     MessageService
	ProfileService     ProfileService
	StatsService       StatsService
}
