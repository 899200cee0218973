package services

import (
	"encoding/json"
	"sort"
	"strings"

	"shiftmate/internal/models"
	"shiftmate/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// In-memory реализации репозиториев для юнит-тестов сервисов.
// Повторяют контракт настоящих реализаций, включая sentinel-ошибки.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) UpdateFields(userID string, fields map[string]interface{}) (*models.User, error) {
	user, ok := r.users[userID]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	for key, val := range fields {
		switch key {
		case "phone":
			s := val.(string)
			user.Phone = &s
		case "bio":
			s := val.(string)
			user.Bio = &s
		case "location":
			s := val.(string)
			user.Location = &s
		case "company_name":
			s := val.(string)
			user.CompanyName = &s
		case "company_website":
			s := val.(string)
			user.CompanyWebsite = &s
		case "industry":
			s := val.(string)
			user.Industry = &s
		case "skills":
			user.Skills = val.(datatypes.JSON)
		case "availability":
			s := val.(string)
			user.Availability = &s
		case "experience_years":
			n := val.(int)
			user.ExperienceYears = &n
		}
	}
	return user, nil
}

func (r *fakeUserRepo) SearchWorkers(criteria repositories.WorkerSearchCriteria) ([]models.User, error) {
	var result []models.User
	for _, u := range r.users {
		if u.UserType != models.UserTypeWorker {
			continue
		}
		if criteria.Availability != "" {
			if u.Availability == nil || *u.Availability != criteria.Availability {
				continue
			}
		}
		if !hasAllSkills(u, criteria.Skills) {
			continue
		}
		result = append(result, *u)
	}
	return result, nil
}

func (r *fakeUserRepo) CountAll() (int64, error) {
	return int64(len(r.users)), nil
}

func hasAllSkills(u *models.User, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	var skills []string
	if len(u.Skills) > 0 {
		if err := json.Unmarshal(u.Skills, &skills); err != nil {
			return false
		}
	}
	for _, w := range wanted {
		found := false
		for _, s := range skills {
			if s == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

type fakeJobRepo struct {
	jobs map[string]*models.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]*models.Job{}}
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	return job, nil
}

func (r *fakeJobRepo) ListAll() ([]models.Job, error) {
	return r.sorted(func(*models.Job) bool { return true }), nil
}

func (r *fakeJobRepo) ListByOwner(ownerID string) ([]models.Job, error) {
	return r.sorted(func(j *models.Job) bool { return j.UserID == ownerID }), nil
}

func (r *fakeJobRepo) Search(criteria repositories.JobSearchCriteria) ([]models.Job, error) {
	return r.sorted(func(j *models.Job) bool {
		if criteria.Keyword != "" && !containsFold(j.Title, criteria.Keyword) {
			return false
		}
		if criteria.Location != "" && !containsFold(j.Location, criteria.Location) {
			return false
		}
		if criteria.EmploymentType != "" {
			if j.EmploymentType == nil || *j.EmploymentType != criteria.EmploymentType {
				return false
			}
		}
		return true
	}), nil
}

func (r *fakeJobRepo) Delete(jobID string) error {
	if _, ok := r.jobs[jobID]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(r.jobs, jobID)
	return nil
}

func (r *fakeJobRepo) CountAll() (int64, error) {
	return int64(len(r.jobs)), nil
}

func (r *fakeJobRepo) sorted(keep func(*models.Job) bool) []models.Job {
	var jobs []models.Job
	for _, j := range r.jobs {
		if keep(j) {
			jobs = append(jobs, *j)
		}
	}
	sort.Slice(jobs, func(i, k int) bool { return jobs[i].ID < jobs[k].ID })
	return jobs
}

type fakeApplicationRepo struct {
	apps map[string]*models.Application // user|job -> app
	msgs *fakeMessageRepo               // вводные сообщения из CreateWithMessage
}

func newFakeApplicationRepo(msgs *fakeMessageRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: map[string]*models.Application{}, msgs: msgs}
}

func appKey(userID, jobID string) string { return userID + "|" + jobID }

func (r *fakeApplicationRepo) CreateWithMessage(app *models.Application, msg *models.Message) error {
	key := appKey(app.UserID, app.JobID)
	if _, ok := r.apps[key]; ok {
		return repositories.ErrDuplicateApplication
	}
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	r.apps[key] = app
	if msg != nil {
		if err := r.msgs.Create(msg); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeApplicationRepo) FindByUserAndJob(userID, jobID string) (*models.Application, error) {
	app, ok := r.apps[appKey(userID, jobID)]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	return app, nil
}

func (r *fakeApplicationRepo) ListByWorker(workerID string) ([]models.Application, error) {
	var apps []models.Application
	for _, app := range r.apps {
		if app.UserID == workerID {
			apps = append(apps, *app)
		}
	}
	sort.Slice(apps, func(i, k int) bool { return apps[i].ID < apps[k].ID })
	return apps, nil
}

func (r *fakeApplicationRepo) Delete(userID, jobID string) error {
	delete(r.apps, appKey(userID, jobID))
	return nil
}

func (r *fakeApplicationRepo) UpdateStatusIfPending(userID, jobID string, status models.ApplicationStatus) error {
	app, ok := r.apps[appKey(userID, jobID)]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	if app.Status != models.ApplicationStatusPending {
		return repositories.ErrApplicationNotPending
	}
	app.Status = status
	return nil
}

type fakeMessageRepo struct {
	msgs map[string]*models.Message
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{msgs: map[string]*models.Message{}}
}

func (r *fakeMessageRepo) Create(msg *models.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	r.msgs[msg.ID] = msg
	return nil
}

func (r *fakeMessageRepo) FindByID(id string) (*models.Message, error) {
	msg, ok := r.msgs[id]
	if !ok {
		return nil, repositories.ErrMessageNotFound
	}
	return msg, nil
}

func (r *fakeMessageRepo) ListForUser(userID string) ([]models.Message, error) {
	var msgs []models.Message
	for _, m := range r.msgs {
		if m.SenderID == userID || m.ReceiverID == userID {
			msgs = append(msgs, *m)
		}
	}
	sort.Slice(msgs, func(i, k int) bool { return msgs[i].ID < msgs[k].ID })
	return msgs, nil
}

func (r *fakeMessageRepo) MarkRead(id string) error {
	msg, ok := r.msgs[id]
	if !ok {
		return repositories.ErrMessageNotFound
	}
	msg.IsRead = true
	return nil
}

func (r *fakeMessageRepo) SetDeletedForRole(id string, role models.UserType) error {
	msg, ok := r.msgs[id]
	if !ok {
		return repositories.ErrMessageNotFound
	}
	if role == models.UserTypeBusiness {
		msg.DeletedByBusiness = true
	} else {
		msg.DeletedByWorker = true
	}
	return nil
}

func (r *fakeMessageRepo) CountUnread(userID string) (int64, error) {
	var count int64
	for _, m := range r.msgs {
		if m.ReceiverID == userID && !m.IsRead {
			count++
		}
	}
	return count, nil
}
