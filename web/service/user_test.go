package service

import (
	"testing"

	"github.com/evolvo-uz/evolvo/database/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertInsertAndUpdate(t *testing.T) {
	setup(t)
	defer teardown()

	svc := &UserService{}

	user := &model.User{Email: "dilshod@example.uz", FirstName: "Dilshod"}
	require.NoError(t, svc.Upsert(user))
	require.NotEmpty(t, user.Id)
	assert.Equal(t, model.RoleUser, user.Role)

	user.FirstName = "Dilshodbek"
	require.NoError(t, svc.Upsert(user))

	got, err := svc.GetById(user.Id)
	require.NoError(t, err)
	assert.Equal(t, "Dilshodbek", got.FirstName)
}

func TestUpsertPreservesRoleAndHash(t *testing.T) {
	setup(t)
	defer teardown()

	svc := &UserService{}

	admin := &model.User{
		Id:           uuid.NewString(),
		Email:        "boss@example.uz",
		Role:         model.RoleAdmin,
		PasswordHash: "$2a$12$fakehashfakehashfakehash",
	}
	require.NoError(t, svc.Upsert(admin))

	// A profile upsert without role or hash must not clobber either.
	require.NoError(t, svc.Upsert(&model.User{
		Id:        admin.Id,
		Email:     "boss@example.uz",
		FirstName: "Botir",
	}))

	got, err := svc.GetById(admin.Id)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, got.Role)
	assert.Equal(t, admin.PasswordHash, got.PasswordHash)
	assert.Equal(t, "Botir", got.FirstName)
}

func TestUpdateRole(t *testing.T) {
	setup(t)
	defer teardown()

	svc := &UserService{}
	user := &model.User{Id: uuid.NewString(), Email: "temp@example.uz", Role: model.RoleAdmin}
	require.NoError(t, svc.Upsert(user))

	require.NoError(t, svc.UpdateRole(user.Id, model.RoleUser))
	got, err := svc.GetById(user.Id)
	require.NoError(t, err)
	assert.False(t, got.IsAdmin())
}
