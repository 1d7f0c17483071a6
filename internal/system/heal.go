package system

import (
	"github.com/dustinlacewell/schedule-1/internal/core/ecs"
	"github.com/dustinlacewell/schedule-1/internal/world"
)

// HealPlayer has the doctor NPC heal the player for its fixed cost. Health
// is raised by the doctor's heal amount, clamped to the player's maximum.
// No-op when the NPC is not a doctor, the player can't afford it, or the
// player is already at full health.
func HealPlayer(w *world.World, npcID ecs.EntityID) bool {
	doctor, isDoctor := w.Doctors.Get(npcID)
	playerWallet := w.PlayerWallet()
	player := w.Player()
	if !isDoctor || playerWallet == nil || player == nil {
		return false
	}
	if playerWallet.Money < doctor.HealCost {
		return false
	}
	if player.Health >= player.MaxHealth {
		return false
	}

	playerWallet.Money -= doctor.HealCost
	player.Health += doctor.HealAmount
	if player.Health > player.MaxHealth {
		player.Health = player.MaxHealth
	}
	return true
}
