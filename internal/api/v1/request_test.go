package v1_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	v1 "github.com/venturearena/backend/internal/api/v1"
)

func TestCreateStartupRequest_Validation(t *testing.T) {
	validate := validator.New()

	t.Run("accepts a fully described startup", func(t *testing.T) {
		err := validate.Struct(v1.CreateStartupRequest{
			Name:        "Rocketly",
			Description: "Reusable rockets for regional freight",
			Pitch:       "Rockets, but friendly",
		})

		assert.NoError(t, err)
	})

	t.Run("rejects a startup missing description and pitch", func(t *testing.T) {
		err := validate.Struct(v1.CreateStartupRequest{Name: "Rocketly"})

		assert.Error(t, err)
	})

	t.Run("rejects a startup missing only the pitch", func(t *testing.T) {
		err := validate.Struct(v1.CreateStartupRequest{
			Name:        "Rocketly",
			Description: "Reusable rockets for regional freight",
		})

		assert.Error(t, err)
	})

	t.Run("multiplier stays optional", func(t *testing.T) {
		err := validate.Struct(v1.CreateStartupRequest{
			Name:        "Rocketly",
			Description: "Reusable rockets for regional freight",
			Pitch:       "Rockets, but friendly",
			Multiplier:  nil,
		})

		assert.NoError(t, err)
	})
}
