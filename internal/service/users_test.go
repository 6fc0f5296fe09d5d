package service

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/ideahub/ideahub/internal/db"
	"github.com/ideahub/ideahub/internal/db/testutil"
	"github.com/ideahub/ideahub/internal/models"
)

func TestUserService_CreateValidation(t *testing.T) {
	svc := NewUserService(db.NewRepository(nil), zap.NewNop())
	ctx := context.Background()

	longBio := make([]byte, 501)
	for i := range longBio {
		longBio[i] = 'x'
	}

	tests := []struct {
		name string
		user *models.User
	}{
		{name: "missing email", user: &models.User{Username: "nobody"}},
		{
			name: "bio too long",
			user: &models.User{Email: "long@example.com", Bio: string(longBio)},
		},
		{
			name: "invalid contact preference",
			user: &models.User{Email: "pref@example.com", ContactPreference: "carrier_pigeon"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.Create(ctx, tt.user); !db.IsValidation(err) {
				t.Errorf("Create() error = %v, want ValidationError", err)
			}
		})
	}
}

func TestUserService_CreateMaterializesDefaults(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	svc := NewUserService(db.NewRepository(tx), zap.NewNop())

	user := &models.User{Email: "fresh@example.com", Username: "fresh"}
	if err := svc.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if got := user.Preferences["emailNotifications"]; got != true {
		t.Errorf("Preferences[emailNotifications] = %v, want true", got)
	}
	if got := user.Preferences["profileVisibility"]; got != "public" {
		t.Errorf("Preferences[profileVisibility] = %v, want public", got)
	}
	if got := user.Stats["ideasSubmitted"]; got != 0 {
		t.Errorf("Stats[ideasSubmitted] = %v, want 0", got)
	}
	if user.ContactPreference != models.ContactPreferencePlatform {
		t.Errorf("ContactPreference = %s, want platform", user.ContactPreference)
	}
}

func TestUserService_UpdatePreservesCustomMaps(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	repo := db.NewRepository(tx)
	svc := NewUserService(repo, zap.NewNop())

	user := &models.User{Email: "custom@example.com", Username: "custom"}
	if err := svc.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	user.Preferences = datatypes.JSONMap{
		"emailNotifications": false,
		"weeklyDigest":       false,
	}
	if err := svc.Update(ctx, user); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := db.NewUserRepository(repo).GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Preferences["emailNotifications"] != false {
		t.Errorf("customized preference overwritten: %v", got.Preferences)
	}
	if _, exists := got.Preferences["profileVisibility"]; exists {
		t.Errorf("partial map refilled with defaults: %v", got.Preferences)
	}
}

func TestUserService_UpdateEmptyMapRematerializes(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	repo := db.NewRepository(tx)
	svc := NewUserService(repo, zap.NewNop())

	user := &models.User{Email: "reset@example.com", Username: "reset"}
	if err := svc.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// An empty map is indistinguishable from an unset one and comes back
	// with defaults
	user.Preferences = datatypes.JSONMap{}
	if err := svc.Update(ctx, user); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if user.Preferences["emailNotifications"] != true {
		t.Errorf("empty map not re-materialized: %v", user.Preferences)
	}
}

func TestUserService_RecordActivity(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	repo := db.NewRepository(tx)
	svc := NewUserService(repo, zap.NewNop())

	user := testutil.SeedUser(t, tx, "active@example.com")

	if err := svc.RecordActivity(ctx, &models.UserActivity{
		UserID:       user.ID,
		ActivityType: "teleported",
	}); !db.IsValidation(err) {
		t.Errorf("RecordActivity() invalid type error = %v, want ValidationError", err)
	}

	if err := svc.RecordActivity(ctx, &models.UserActivity{
		UserID:       user.ID,
		ActivityType: models.ActivityProjectCreated,
		Description:  "created a project",
	}); err != nil {
		t.Fatalf("RecordActivity() error = %v", err)
	}

	activities, err := db.NewUserActivityRepository(repo).ListByUser(ctx, user.ID, 10)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(activities) != 1 {
		t.Errorf("ListByUser() returned %d activities, want 1", len(activities))
	}
}
