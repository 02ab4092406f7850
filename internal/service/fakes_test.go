package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jobboard/jobboard-api/internal/domain"
	"github.com/jobboard/jobboard-api/internal/events"
	"github.com/jobboard/jobboard-api/internal/repository"
)

type fakeUserRepo struct {
	mu        sync.Mutex
	next      int64
	users     map[string]domain.User
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Username]; ok {
		return repository.ErrDuplicate
	}
	r.next++
	user.ID = r.next
	user.CreatedAt = time.Now()
	r.users[user.Username] = *user
	return nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &u, nil
}

func (r *fakeUserRepo) List(_ context.Context, _, _ int) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, username string, patch domain.UserPatch) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	u, ok := r.users[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	if patch.FirstName != nil {
		u.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = *patch.LastName
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	r.users[username] = u
	return &u, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	delete(r.users, username)
	return &u, nil
}

type fakeCompanyRepo struct {
	mu        sync.Mutex
	companies map[string]domain.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]domain.Company{}}
}

func (r *fakeCompanyRepo) Create(_ context.Context, c *domain.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.companies[c.Handle]; ok {
		return repository.ErrDuplicate
	}
	c.ID = int64(len(r.companies) + 1)
	r.companies[c.Handle] = *c
	return nil
}

func (r *fakeCompanyRepo) GetByHandle(_ context.Context, handle string) (*domain.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.companies[handle]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &c, nil
}

func (r *fakeCompanyRepo) List(_ context.Context, _ repository.CompanyFilter) ([]domain.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Company, 0, len(r.companies))
	for _, c := range r.companies {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, handle string, patch domain.CompanyPatch) (*domain.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.companies[handle]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.PasswordHash != nil {
		c.PasswordHash = *patch.PasswordHash
	}
	r.companies[handle] = c
	return &c, nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, handle string) (*domain.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.companies[handle]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	delete(r.companies, handle)
	return &c, nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	next int64
	jobs map[int64]domain.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[int64]domain.Job{}}
}

func (r *fakeJobRepo) Create(_ context.Context, job *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	job.ID = r.next
	r.jobs[job.ID] = *job
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id int64) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &j, nil
}

func (r *fakeJobRepo) List(_ context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Job
	for _, j := range r.jobs {
		if filter.Company != nil && j.Company != *filter.Company {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (r *fakeJobRepo) Update(_ context.Context, id int64, patch domain.JobPatch) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if patch.Title != nil {
		j.Title = *patch.Title
	}
	if patch.Salary != nil {
		j.Salary = *patch.Salary
	}
	if patch.Equity != nil {
		j.Equity = *patch.Equity
	}
	r.jobs[id] = j
	return &j, nil
}

func (r *fakeJobRepo) Delete(_ context.Context, id int64) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	delete(r.jobs, id)
	return &j, nil
}

type appKey struct {
	jobID    int64
	username string
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	next int64
	apps map[appKey]domain.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: map[appKey]domain.Application{}}
}

func (r *fakeApplicationRepo) Create(_ context.Context, app *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := appKey{app.JobID, app.Username}
	if _, ok := r.apps[key]; ok {
		return repository.ErrDuplicate
	}
	r.next++
	app.ID = r.next
	r.apps[key] = *app
	return nil
}

func (r *fakeApplicationRepo) Delete(_ context.Context, jobID int64, username string) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := appKey{jobID, username}
	app, ok := r.apps[key]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	delete(r.apps, key)
	return &app, nil
}

func (r *fakeApplicationRepo) ListByJob(_ context.Context, jobID int64) ([]domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Application
	for k, a := range r.apps {
		if k.jobID == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByUsername(_ context.Context, username string) ([]domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Application
	for k, a := range r.apps {
		if k.username == username {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeCounters struct {
	mu     sync.Mutex
	counts map[string]int64
	err    error
}

func newFakeCounters() *fakeCounters {
	return &fakeCounters{counts: map[string]int64{}}
}

func (f *fakeCounters) Incr(_ context.Context, key string, _ time.Duration) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.counts[key]++
	return f.counts[key], nil
}

func (f *fakeCounters) Count(_ context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[key], nil
}

func (f *fakeCounters) Del(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, k := range keys {
		delete(f.counts, k)
	}
	return nil
}

var errStoreDown = errors.New("store down")

type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) types() []events.EventType {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]events.EventType, 0, len(d.events))
	for _, e := range d.events {
		out = append(out, e.Type)
	}
	return out
}
