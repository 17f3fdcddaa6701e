package services

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/paharpur/siteadmin/internal/common"
	"github.com/paharpur/siteadmin/internal/dbx"
	"github.com/paharpur/siteadmin/internal/server/models"
	"github.com/paharpur/siteadmin/internal/server/repositories/content"
	"github.com/paharpur/siteadmin/internal/server/repositories/enquiries"
	"github.com/paharpur/siteadmin/internal/server/repositories/users"
)

// fakeUserRepo is an in-memory users.Repository.
type fakeUserRepo struct {
	byEmail map[string]*models.User
	nextID  int64

	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*models.User), nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[user.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	user.ID = f.nextID
	f.nextID++
	f.byEmail[user.Email] = user
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]models.User, error) {
	items := make([]models.User, 0, len(f.byEmail))
	for _, u := range f.byEmail {
		items = append(items, *u)
	}
	return items, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

// fakeContentRepo is an in-memory content.Repository.
type fakeContentRepo struct {
	sections    map[string]json.RawMessage
	initiatives []models.Initiative
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{sections: make(map[string]json.RawMessage)}
}

func (f *fakeContentRepo) GetSection(ctx context.Context, name string) (*models.Section, error) {
	p, ok := f.sections[name]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &models.Section{Name: name, Payload: p}, nil
}

func (f *fakeContentRepo) UpsertSection(ctx context.Context, name string, payload json.RawMessage) error {
	f.sections[name] = payload
	return nil
}

func (f *fakeContentRepo) ListInitiatives(ctx context.Context) ([]models.Initiative, error) {
	return f.initiatives, nil
}

func (f *fakeContentRepo) CreateInitiative(ctx context.Context, in *models.Initiative) error {
	f.initiatives = append(f.initiatives, *in)
	return nil
}

func (f *fakeContentRepo) UpdateInitiative(ctx context.Context, in *models.Initiative) error {
	for i := range f.initiatives {
		if f.initiatives[i].ID == in.ID {
			in.CreatedAt = f.initiatives[i].CreatedAt
			f.initiatives[i] = *in
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeContentRepo) DeleteInitiative(ctx context.Context, id string) error {
	for i, in := range f.initiatives {
		if in.ID == id {
			f.initiatives = append(f.initiatives[:i], f.initiatives[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

// fakeEnquiryRepo is an in-memory enquiries.Repository.
type fakeEnquiryRepo struct {
	items []models.Enquiry
}

func (f *fakeEnquiryRepo) List(ctx context.Context) ([]models.Enquiry, error) {
	return f.items, nil
}

func (f *fakeEnquiryRepo) Create(ctx context.Context, e *models.Enquiry) error {
	f.items = append(f.items, *e)
	return nil
}

func (f *fakeEnquiryRepo) UpdateStatus(ctx context.Context, id, status string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Status = status
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeEnquiryRepo) Delete(ctx context.Context, id string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

// fakeRepoManager hands out the fake repositories regardless of the DBTX.
type fakeRepoManager struct {
	users     *fakeUserRepo
	content   *fakeContentRepo
	enquiries *fakeEnquiryRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:     newFakeUserRepo(),
		content:   newFakeContentRepo(),
		enquiries: &fakeEnquiryRepo{},
	}
}

func (f *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (f *fakeRepoManager) Users(db dbx.DBTX) users.Repository                  { return f.users }
func (f *fakeRepoManager) Content(db dbx.DBTX) content.Repository              { return f.content }
func (f *fakeRepoManager) Enquiries(db dbx.DBTX) enquiries.Repository          { return f.enquiries }
