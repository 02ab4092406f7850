package http

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/jobboard/jobboard-api/internal/domain"
	"github.com/jobboard/jobboard-api/internal/repository"
)

type memUsers struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func (r *memUsers) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Username]; ok {
		return repository.ErrDuplicate
	}
	u.ID = int64(len(r.users) + 1)
	r.users[u.Username] = *u
	return nil
}

func (r *memUsers) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &u, nil
}

func (r *memUsers) List(context.Context, int, int) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memUsers) Update(_ context.Context, username string, patch domain.UserPatch) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if patch.FirstName != nil {
		u.FirstName = *patch.FirstName
	}
	r.users[username] = u
	return &u, nil
}

func (r *memUsers) Delete(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	delete(r.users, username)
	return &u, nil
}

type memCompanies struct {
	mu        sync.Mutex
	companies map[string]domain.Company
}

func (r *memCompanies) Create(_ context.Context, c *domain.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.companies[c.Handle]; ok {
		return repository.ErrDuplicate
	}
	r.companies[c.Handle] = *c
	return nil
}

func (r *memCompanies) GetByHandle(_ context.Context, handle string) (*domain.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.companies[handle]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &c, nil
}

func (r *memCompanies) List(context.Context, repository.CompanyFilter) ([]domain.Company, error) {
	return nil, nil
}

func (r *memCompanies) Update(ctx context.Context, handle string, _ domain.CompanyPatch) (*domain.Company, error) {
	return r.GetByHandle(ctx, handle)
}

func (r *memCompanies) Delete(_ context.Context, handle string) (*domain.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.companies[handle]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	delete(r.companies, handle)
	return &c, nil
}

type memJobs struct {
	mu   sync.Mutex
	jobs map[int64]domain.Job
}

func (r *memJobs) Create(_ context.Context, j *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j.ID = int64(len(r.jobs) + 1)
	r.jobs[j.ID] = *j
	return nil
}

func (r *memJobs) GetByID(_ context.Context, id int64) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &j, nil
}

func (r *memJobs) List(_ context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Job
	for _, j := range r.jobs {
		if filter.Company != nil && *filter.Company != j.Company {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (r *memJobs) Update(_ context.Context, id int64, patch domain.JobPatch) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if patch.Title != nil {
		j.Title = *patch.Title
	}
	r.jobs[id] = j
	return &j, nil
}

func (r *memJobs) Delete(_ context.Context, id int64) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	delete(r.jobs, id)
	return &j, nil
}

type memApplications struct {
	mu   sync.Mutex
	apps []domain.Application
}

func (r *memApplications) Create(_ context.Context, app *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.apps {
		if a.JobID == app.JobID && a.Username == app.Username {
			return repository.ErrDuplicate
		}
	}
	app.ID = int64(len(r.apps) + 1)
	r.apps = append(r.apps, *app)
	return nil
}

func (r *memApplications) Delete(_ context.Context, jobID int64, username string) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.apps {
		if a.JobID == jobID && a.Username == username {
			r.apps = append(r.apps[:i], r.apps[i+1:]...)
			return &a, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memApplications) ListByJob(_ context.Context, jobID int64) ([]domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Application
	for _, a := range r.apps {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memApplications) ListByUsername(_ context.Context, username string) ([]domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Application
	for _, a := range r.apps {
		if a.Username == username {
			out = append(out, a)
		}
	}
	return out, nil
}
