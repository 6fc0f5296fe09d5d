package db

import (
	"context"
	"testing"

	"github.com/ideahub/ideahub/internal/db/testutil"
	"github.com/ideahub/ideahub/internal/models"
)

func TestUserRepository_UniqueEmail(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	repo := NewUserRepository(NewRepository(tx))

	testutil.SeedUser(t, tx, "taken@example.com")

	err := repo.Create(ctx, &models.User{
		Email:             "taken@example.com",
		Username:          "other",
		ContactPreference: models.ContactPreferencePlatform,
	})
	if !IsConstraintViolation(err) {
		t.Errorf("Create() duplicate email error = %v, want ConstraintViolationError", err)
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	repo := NewUserRepository(NewRepository(tx))

	seeded := testutil.SeedUser(t, tx, "findme@example.com")

	got, err := repo.GetByEmail(ctx, "findme@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if got.ID != seeded.ID {
		t.Errorf("GetByEmail() id = %d, want %d", got.ID, seeded.ID)
	}

	if _, err := repo.GetByEmail(ctx, "nobody@example.com"); !IsNotFound(err) {
		t.Errorf("GetByEmail() missing user error = %v, want ErrNotFound", err)
	}
}

func TestUserRepository_DeleteCascadesActivities(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()

	user := testutil.SeedUser(t, tx, "leaver@example.com")
	if err := NewUserActivityRepository(NewRepository(tx)).Create(ctx, &models.UserActivity{
		UserID:       user.ID,
		ActivityType: models.ActivityLogin,
	}); err != nil {
		t.Fatalf("Create() activity error = %v", err)
	}

	if err := NewUserRepository(NewRepository(tx)).Delete(ctx, user.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var activities int64
	if err := tx.Model(&models.UserActivity{}).Where("user_id = ?", user.ID).Count(&activities).Error; err != nil {
		t.Fatalf("count activities: %v", err)
	}
	if activities != 0 {
		t.Errorf("activities after user delete = %d, want 0", activities)
	}
}

func TestUserRepository_DeleteMissing(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))

	err := NewUserRepository(NewRepository(tx)).Delete(context.Background(), 999999)
	if !IsNotFound(err) {
		t.Errorf("Delete() missing user error = %v, want ErrNotFound", err)
	}
}

func TestListParams_SearchAndFilters(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))

	testutil.SeedUser(t, tx, "alpha@example.com")
	beta := testutil.SeedUser(t, tx, "beta@example.com")
	beta.IsStaff = true
	if err := tx.Save(beta).Error; err != nil {
		t.Fatalf("save user: %v", err)
	}

	params := ListParams{
		Page:         1,
		PageSize:     10,
		Search:       "beta",
		SearchFields: []string{"email", "username"},
		Filters:      map[string]interface{}{"is_staff": true},
		OrderBy:      "email",
	}

	var users []*models.User
	if err := params.Apply(tx.Model(&models.User{})).Find(&users).Error; err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(users) != 1 || users[0].Email != "beta@example.com" {
		t.Errorf("Apply() matched %d users, want only beta", len(users))
	}

	total, err := params.Count(tx.Model(&models.User{}))
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if total != 1 {
		t.Errorf("Count() = %d, want 1", total)
	}
}
