package services

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"recipebox/internal/models"
	"recipebox/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, bcrypt.MinCost)

		user, err := svc.CreateUser("test@test.com", "Password", "Test User")
		testutil.AssertNoError(t, err)

		if user.ID == 0 {
			t.Fatal("expected non-zero user ID")
		}
		if user.Email != "test@test.com" {
			t.Errorf("expected email test@test.com, got %s", user.Email)
		}
		if user.Name != "Test User" {
			t.Errorf("expected name 'Test User', got %s", user.Name)
		}
		if user.IsStaff || user.IsSuperuser {
			t.Error("regular user should not have staff or superuser flags")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Password")); err != nil {
			t.Error("stored password hash should verify against the plaintext")
		}
		if user.Password == "Password" {
			t.Error("password must not be stored in plaintext")
		}
	})

	t.Run("normalizes_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, bcrypt.MinCost)

		user, err := svc.CreateUser("Test@TEST.Com", "Password", "")
		testutil.AssertNoError(t, err)

		if user.Email != "test@test.com" {
			t.Errorf("expected lower-cased email, got %s", user.Email)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, bcrypt.MinCost)

		_, err := svc.CreateUser("dup@test.com", "Password", "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("dup@test.com", "Password", "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("duplicate_email_case_insensitive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, bcrypt.MinCost)

		_, err := svc.CreateUser("case@test.com", "Password", "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("CASE@test.com", "Password", "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("missing_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, bcrypt.MinCost)

		_, err := svc.CreateUser("", "Password", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("short_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, bcrypt.MinCost)

		_, err := svc.CreateUser("short@test.com", "pd", "")
		testutil.AssertAppError(t, err, "PASSWORD_TOO_SHORT")

		// No user row may exist after the rejected attempt.
		var count int64
		db.Model(&models.User{}).Where("email = ?", "short@test.com").Count(&count)
		if count != 0 {
			t.Errorf("expected no user row, found %d", count)
		}
	})
}

func TestCreateSuperuser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db, bcrypt.MinCost)

	user, err := svc.CreateSuperuser("admin@test.com", "Password")
	testutil.AssertNoError(t, err)

	if !user.IsStaff {
		t.Error("superuser should have the staff flag")
	}
	if !user.IsSuperuser {
		t.Error("superuser should have the superuser flag")
	}
}

func TestAuthenticate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, bcrypt.MinCost)

		created, err := svc.CreateUser("auth@test.com", "Password", "")
		testutil.AssertNoError(t, err)

		user, err := svc.Authenticate("auth@test.com", "Password")
		testutil.AssertNoError(t, err)
		if user.ID != created.ID {
			t.Errorf("expected user ID %d, got %d", created.ID, user.ID)
		}
	})

	t.Run("mixed_case_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, bcrypt.MinCost)

		_, err := svc.CreateUser("mixed@test.com", "Password", "")
		testutil.AssertNoError(t, err)

		_, err = svc.Authenticate("Mixed@Test.com", "Password")
		testutil.AssertNoError(t, err)
	})

	t.Run("wrong_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, bcrypt.MinCost)

		_, err := svc.CreateUser("wrong@test.com", "Password", "")
		testutil.AssertNoError(t, err)

		_, err = svc.Authenticate("wrong@test.com", "NotThePassword")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("unknown_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, bcrypt.MinCost)

		_, err := svc.Authenticate("nobody@test.com", "Password")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("name_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, bcrypt.MinCost)

		user, err := svc.CreateUser("update@test.com", "Password", "Old Name")
		testutil.AssertNoError(t, err)

		name := "New Name"
		updated, err := svc.UpdateUser(user.ID, &name, nil)
		testutil.AssertNoError(t, err)

		if updated.Name != "New Name" {
			t.Errorf("expected name 'New Name', got %s", updated.Name)
		}

		// Password must still verify; it was not among the updated fields.
		_, err = svc.Authenticate("update@test.com", "Password")
		testutil.AssertNoError(t, err)
	})

	t.Run("password_rehashed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, bcrypt.MinCost)

		user, err := svc.CreateUser("rehash@test.com", "Password", "")
		testutil.AssertNoError(t, err)

		newPassword := "NewPassword"
		_, err = svc.UpdateUser(user.ID, nil, &newPassword)
		testutil.AssertNoError(t, err)

		_, err = svc.Authenticate("rehash@test.com", "NewPassword")
		testutil.AssertNoError(t, err)

		_, err = svc.Authenticate("rehash@test.com", "Password")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("short_password_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, bcrypt.MinCost)

		user, err := svc.CreateUser("shortupd@test.com", "Password", "")
		testutil.AssertNoError(t, err)

		short := "pd"
		_, err = svc.UpdateUser(user.ID, nil, &short)
		testutil.AssertAppError(t, err, "PASSWORD_TOO_SHORT")

		// Old password still works.
		_, err = svc.Authenticate("shortupd@test.com", "Password")
		testutil.AssertNoError(t, err)
	})

	t.Run("unknown_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, bcrypt.MinCost)

		name := "Ghost"
		_, err := svc.UpdateUser(99999, &name, nil)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
