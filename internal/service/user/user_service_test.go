package user

import (
	"context"
	"github.com/dinerozz/user-registry/internal/entity"
	"github.com/dinerozz/user-registry/internal/model/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

type recordingRepo struct {
	created []string
}

func (r *recordingRepo) Create(_ context.Context, username string) (entity.User, error) {
	r.created = append(r.created, username)
	return entity.User{ID: int64(len(r.created)), Username: username}, nil
}

func (r *recordingRepo) GetAll(context.Context) ([]entity.User, error) { return nil, nil }

func (r *recordingRepo) Delete(context.Context, int64) error { return nil }

func TestUserService_CreateUserRejectsEmpty(t *testing.T) {
	repo := &recordingRepo{}
	srv := NewUserService(repo)

	for _, name := range []string{"", " ", "\t\n"} {
		_, err := srv.CreateUser(context.Background(), &request.CreateUser{Username: name})
		assert.ErrorIs(t, err, ErrUsernameRequired, "username %q", name)
	}
	assert.Empty(t, repo.created)
}

func TestUserService_CreateUserKeepsUsernameAsSubmitted(t *testing.T) {
	repo := &recordingRepo{}
	srv := NewUserService(repo)

	u, err := srv.CreateUser(context.Background(), &request.CreateUser{Username: "  alice "})
	require.NoError(t, err)
	assert.Equal(t, "  alice ", u.Username)
	assert.Equal(t, []string{"  alice "}, repo.created)
}
