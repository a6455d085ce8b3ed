//go:build unit

package commands_test

import (
	"testing"
	"time"

	"feedbackpro/internal/domain/response"
	"feedbackpro/internal/pkg/config"
	"feedbackpro/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRewardPolicy(t *testing.T) {
	t.Run("defaults qualify direct sms only", func(t *testing.T) {
		policy, err := commands.NewRewardPolicy(config.NewTestConfig())
		require.NoError(t, err)
		assert.True(t, policy.Qualifies(response.DeliveryDirectSMS))
		assert.False(t, policy.Qualifies(response.DeliveryQR))
	})

	t.Run("code length above the ceiling is rejected", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Reward.CodeLength = 40

		_, err := commands.NewRewardPolicy(cfg)
		assert.ErrorContains(t, err, "REWARD_CODE_LENGTH")
	})

	t.Run("discount value the column would round is rejected", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Reward.DiscountValue = "7.125"

		_, err := commands.NewRewardPolicy(cfg)
		assert.ErrorContains(t, err, "REWARD_DISCOUNT_VALUE")
	})

	t.Run("unknown qualifying type is rejected", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Reward.QualifyingTypes = []string{"CARRIER_PIGEON"}

		_, err := commands.NewRewardPolicy(cfg)
		assert.ErrorContains(t, err, "REWARD_QUALIFYING_TYPES")
	})

	t.Run("zero validity never expires", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Reward.Validity = 0

		policy, err := commands.NewRewardPolicy(cfg)
		require.NoError(t, err)
		assert.Nil(t, policy.ExpiryFrom(time.Now()))
	})
}
