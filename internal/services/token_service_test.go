package services

import (
	"testing"

	"recipebox/internal/testutil"
)

func TestObtainToken(t *testing.T) {
	t.Run("creates_lazily", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTokenService(db)
		user := testutil.CreateTestUser(t, db)

		key, err := svc.ObtainToken(user.ID)
		testutil.AssertNoError(t, err)

		if len(key) != 40 {
			t.Errorf("expected 40-character token key, got %d characters", len(key))
		}
	})

	t.Run("reuses_existing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTokenService(db)
		user := testutil.CreateTestUser(t, db)

		first, err := svc.ObtainToken(user.ID)
		testutil.AssertNoError(t, err)

		second, err := svc.ObtainToken(user.ID)
		testutil.AssertNoError(t, err)

		if first != second {
			t.Error("expected the same key on repeated issuance for one user")
		}
	})

	t.Run("distinct_per_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTokenService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		key1, err := svc.ObtainToken(user1.ID)
		testutil.AssertNoError(t, err)
		key2, err := svc.ObtainToken(user2.ID)
		testutil.AssertNoError(t, err)

		if key1 == key2 {
			t.Error("different users must not share a token key")
		}
	})
}

func TestGetUserByKey(t *testing.T) {
	t.Run("resolves", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTokenService(db)
		user := testutil.CreateTestUser(t, db)

		key, err := svc.ObtainToken(user.ID)
		testutil.AssertNoError(t, err)

		resolved, err := svc.GetUserByKey(key)
		testutil.AssertNoError(t, err)
		if resolved.ID != user.ID {
			t.Errorf("expected user ID %d, got %d", user.ID, resolved.ID)
		}
		if resolved.Email != user.Email {
			t.Errorf("expected email %s, got %s", user.Email, resolved.Email)
		}
	})

	t.Run("unknown_key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTokenService(db)

		_, err := svc.GetUserByKey("0000000000000000000000000000000000000000")
		testutil.AssertAppError(t, err, "INVALID_TOKEN")
	})
}
