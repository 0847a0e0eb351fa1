package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/shared"
)

func TestAuthorize(t *testing.T) {
	outletID := uuid.New()

	t.Run("rejects absent session", func(t *testing.T) {
		actor, err := Authorize(nil)

		assert.Nil(t, actor)
		assert.Equal(t, shared.ErrUnauthorized, err)
	})

	t.Run("rejects customer", func(t *testing.T) {
		actor, err := Authorize(NewSession("u1", "customer", nil))

		assert.Nil(t, actor)
		assert.Equal(t, shared.ErrForbidden, err)
	})

	t.Run("rejects delivery agent", func(t *testing.T) {
		actor, err := Authorize(NewSession("u1", "delivery_agent", nil))

		assert.Nil(t, actor)
		assert.Equal(t, shared.ErrForbidden, err)
	})

	t.Run("rejects unknown role via customer fallback", func(t *testing.T) {
		actor, err := Authorize(NewSession("u1", "root", nil))

		assert.Nil(t, actor)
		assert.Equal(t, shared.ErrForbidden, err)
	})

	t.Run("admits outlet admin with affiliation", func(t *testing.T) {
		actor, err := Authorize(NewSession("u1", "outlet_admin", &outletID))

		require.NoError(t, err)
		require.NotNil(t, actor)
		assert.Equal(t, "u1", actor.UserID)
		assert.Equal(t, RoleOutletAdmin, actor.Role)
		require.NotNil(t, actor.OutletID)
		assert.Equal(t, outletID, *actor.OutletID)
	})

	t.Run("admits super admin without affiliation", func(t *testing.T) {
		actor, err := Authorize(NewSession("u2", "super_admin", nil))

		require.NoError(t, err)
		require.NotNil(t, actor)
		assert.Nil(t, actor.OutletID)
	})
}

func TestActor_EffectiveOutletID(t *testing.T) {
	ownOutlet := uuid.New()
	otherOutlet := uuid.New()

	t.Run("super admin uses requested outlet", func(t *testing.T) {
		actor := &Actor{UserID: "u1", Role: RoleSuperAdmin}

		got := actor.EffectiveOutletID(&otherOutlet)

		require.NotNil(t, got)
		assert.Equal(t, otherOutlet, *got)
	})

	t.Run("super admin may resolve to nothing", func(t *testing.T) {
		actor := &Actor{UserID: "u1", Role: RoleSuperAdmin}

		assert.Nil(t, actor.EffectiveOutletID(nil))
	})

	t.Run("outlet admin is pinned to own outlet", func(t *testing.T) {
		actor := &Actor{UserID: "u1", Role: RoleOutletAdmin, OutletID: &ownOutlet}

		got := actor.EffectiveOutletID(&otherOutlet)

		require.NotNil(t, got)
		assert.Equal(t, ownOutlet, *got)
	})

	t.Run("outlet admin without affiliation resolves to nothing", func(t *testing.T) {
		actor := &Actor{UserID: "u1", Role: RoleOutletAdmin}

		assert.Nil(t, actor.EffectiveOutletID(&otherOutlet))
	})
}

func TestActor_OwnsOutlet(t *testing.T) {
	ownOutlet := uuid.New()
	otherOutlet := uuid.New()

	t.Run("super admin owns everything", func(t *testing.T) {
		actor := &Actor{Role: RoleSuperAdmin}

		assert.True(t, actor.OwnsOutlet(otherOutlet))
	})

	t.Run("outlet admin owns own outlet", func(t *testing.T) {
		actor := &Actor{Role: RoleOutletAdmin, OutletID: &ownOutlet}

		assert.True(t, actor.OwnsOutlet(ownOutlet))
		assert.False(t, actor.OwnsOutlet(otherOutlet))
	})

	t.Run("unaffiliated admin passes the ownership check", func(t *testing.T) {
		actor := &Actor{Role: RoleOutletAdmin}

		assert.True(t, actor.OwnsOutlet(otherOutlet))
	})
}
