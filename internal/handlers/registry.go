package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	MessageHandler     *MessageHandler
	ProfileHandler     *ProfileHandler
	SearchHandler      *SearchHandler
	StatsHandler       *StatsHandler
}
