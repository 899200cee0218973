package dto

// StatsResponse - публичные счетчики платформы для лендинга
type StatsResponse struct {
	TotalUsers int64 `json:"total_users"`
	TotalJobs  int64 `json:"total_jobs"`
}
