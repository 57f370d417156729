//go:build integration

package main_test

import (
	"fmt"
	"net/http"
	"testing"

	"pugorugh/backend/internal/database"
	"pugorugh/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBrowseScenario walks the whole browsing flow: per-feeling candidate
// sets, cursor advancement, wraparound and the empty-set 404.
func TestBrowseScenario(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "browser")

	liked := createDog(t, router, token, "Francesca", 36, "female", "small")
	disliked := createDog(t, router, token, "Hank", 70, "male", "large")
	fresh := createDog(t, router, token, "Muffin", 24, "female", "medium")

	rec := doJSON(t, router, http.MethodPut,
		fmt.Sprintf("/api/dog/%d/liked", liked.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPut,
		fmt.Sprintf("/api/dog/%d/disliked", disliked.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	t.Run("next liked from start", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/dog/-1/liked/next", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, liked.ID, decodeDog(t, rec).ID)
	})

	t.Run("next disliked from start", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/dog/-1/disliked/next", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, disliked.ID, decodeDog(t, rec).ID)
	})

	t.Run("next undecided from start", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/dog/-1/undecided/next", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, fresh.ID, decodeDog(t, rec).ID)
	})

	t.Run("sole undecided candidate wraps onto itself", func(t *testing.T) {
		path := fmt.Sprintf("/api/dog/%d/undecided/next", fresh.ID)
		rec := doJSON(t, router, http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, fresh.ID, decodeDog(t, rec).ID)
	})

	t.Run("liked set wraps from the last id", func(t *testing.T) {
		path := fmt.Sprintf("/api/dog/%d/liked/next", liked.ID)
		rec := doJSON(t, router, http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, liked.ID, decodeDog(t, rec).ID)
	})

	t.Run("nonexistent cursor id is just a marker", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/dog/9999/undecided/next", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, fresh.ID, decodeDog(t, rec).ID)
	})

	t.Run("exhausting the undecided set yields 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut,
			fmt.Sprintf("/api/dog/%d/liked", fresh.ID), token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = doJSON(t, router, http.MethodGet, "/api/dog/-1/undecided/next", token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
	})
}

// TestSetFeelingInvariants covers the single-row invariant under alternating
// feelings and the undecided deletion semantics.
func TestSetFeelingInvariants(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "fickle")
	dog := createDog(t, router, token, "Bowser", 10, "male", "medium")

	countRows := func() int64 {
		var n int64
		require.NoError(t, database.DB.Model(&models.UserDog{}).Count(&n).Error)
		return n
	}

	for _, feeling := range []string{"liked", "disliked", "liked", "liked"} {
		rec := doJSON(t, router, http.MethodPut,
			fmt.Sprintf("/api/dog/%d/%s", dog.ID, feeling), token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, int64(1), countRows())
	}

	var rel models.UserDog
	require.NoError(t, database.DB.First(&rel).Error)
	assert.Equal(t, models.FeelingLiked, rel.Status)

	t.Run("undecided deletes the row", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut,
			fmt.Sprintf("/api/dog/%d/undecided", dog.ID), token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, dog.ID, decodeDog(t, rec).ID)
		assert.Equal(t, int64(0), countRows())
	})

	t.Run("undecided with no row is a no-op", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut,
			fmt.Sprintf("/api/dog/%d/undecided", dog.ID), token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, dog.ID, decodeDog(t, rec).ID)
	})

	t.Run("reverted dog reappears in the undecided set", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/dog/-1/undecided/next", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, dog.ID, decodeDog(t, rec).ID)
	})

	t.Run("unknown dog yields 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/api/dog/9999/liked", token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
	})
}

// TestPreferenceFiltering verifies that the undecided set honors the
// caller's allow-sets regardless of relationship state.
func TestPreferenceFiltering(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "picky")

	small := createDog(t, router, token, "Pixel", 12, "female", "small")
	createDog(t, router, token, "Moose", 40, "male", "extra-large")

	prefs := map[string]any{
		"age":    []string{"baby", "young", "adult", "senior"},
		"gender": []string{"male", "female"},
		"size":   []string{"small"},
	}
	rec := doJSON(t, router, http.MethodPut, "/api/user/preferences", token, prefs)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	t.Run("only matching dogs are candidates", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/dog/-1/undecided/next", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, small.ID, decodeDog(t, rec).ID)
	})

	t.Run("filtered-out dogs never surface", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut,
			fmt.Sprintf("/api/dog/%d/liked", small.ID), token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		// Moose is still unrated but outside the size set.
		rec = doJSON(t, router, http.MethodGet, "/api/dog/-1/undecided/next", token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
	})

	t.Run("rejects unknown set values", func(t *testing.T) {
		bad := map[string]any{
			"age":    []string{"puppy"},
			"gender": []string{"female"},
			"size":   []string{"small"},
		}
		rec := doJSON(t, router, http.MethodPut, "/api/user/preferences", token, bad)
		assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	})

	t.Run("preferences round-trip", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/user/preferences", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), "small")
	})
}

// TestLikesCount verifies the likes field aggregates across users.
func TestLikesCount(t *testing.T) {
	router := setupRouter(t)
	alice := registerAndLogin(t, router, "alice")
	bob := registerAndLogin(t, router, "bob")

	dog := createDog(t, router, alice, "Waffles", 20, "male", "medium")

	for _, token := range []string{alice, bob} {
		rec := doJSON(t, router, http.MethodPut,
			fmt.Sprintf("/api/dog/%d/liked", dog.ID), token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec := doJSON(t, router, http.MethodGet, "/api/dog", alice, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"likes":2`)
}

// TestDogLifecycle covers creation validation, deletion and the 404 path.
func TestDogLifecycle(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "keeper")

	t.Run("missing image_filename is rejected", func(t *testing.T) {
		input := map[string]any{
			"name":   "Ghost",
			"age":    12,
			"gender": "male",
			"size":   "large",
		}
		rec := doJSON(t, router, http.MethodPost, "/api/dog", token, input)
		require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), "ImageFilename")
	})

	t.Run("unknown gender is rejected", func(t *testing.T) {
		input := map[string]any{
			"name":           "Ghost",
			"image_filename": "ghost.jpg",
			"age":            12,
			"gender":         "dragon",
			"size":           "large",
		}
		rec := doJSON(t, router, http.MethodPost, "/api/dog", token, input)
		assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	})

	t.Run("age zero is accepted as baby", func(t *testing.T) {
		dog := createDog(t, router, token, "Newborn", 0, "female", "small")
		var stored models.Dog
		require.NoError(t, database.DB.First(&stored, dog.ID).Error)
		assert.Equal(t, models.AgeBaby, stored.AgeLetter)
	})

	t.Run("delete then delete again", func(t *testing.T) {
		dog := createDog(t, router, token, "Fleeting", 30, "male", "medium")

		path := fmt.Sprintf("/api/dog/%d", dog.ID)
		rec := doJSON(t, router, http.MethodDelete, path, token, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, router, http.MethodDelete, path, token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
	})
}

// TestAuthRequired verifies protected routes reject missing or bad tokens.
func TestAuthRequired(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/dog", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authentication credentials were not provided.")

	rec = doJSON(t, router, http.MethodGet, "/api/dog", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
