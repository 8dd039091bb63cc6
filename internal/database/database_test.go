package database

import (
	"testing"

	"github.com/fractionax/marketplace/internal/config"
	"github.com/fractionax/marketplace/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSQLiteMigrates(t *testing.T) {
	db, err := Init(config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)

	for _, m := range model.All() {
		assert.True(t, db.Migrator().HasTable(m), "%T", m)
	}
	assert.NoError(t, Ping(db))
}

func TestUserDefaultsToEmptyLists(t *testing.T) {
	db, err := Init(config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)

	user := model.UserModel{Name: "Ada", Email: "ada@example.com"}
	require.NoError(t, db.Create(&user).Error)

	var got model.UserModel
	require.NoError(t, db.First(&got, user.Id).Error)
	assert.NotNil(t, got.Request)
	assert.Empty(t, got.Request)
	assert.Empty(t, got.Approved)
	assert.False(t, got.DateCreated.IsZero())
}
