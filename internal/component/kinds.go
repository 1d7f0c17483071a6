package component

import "github.com/dustinlacewell/schedule-1/internal/core/ecs"

// Component kinds for kind-addressed queries (Has, EntitiesWithAll).
const (
	KindIdentity    ecs.Kind = "identity"
	KindPosition    ecs.Kind = "position"
	KindWallet      ecs.Kind = "wallet"
	KindInventory   ecs.Kind = "inventory"
	KindSeller      ecs.Kind = "seller"
	KindBuyer       ecs.Kind = "buyer"
	KindDoctor      ecs.Kind = "doctor"
	KindTicketClerk ecs.Kind = "ticket_clerk"
	KindLocation    ecs.Kind = "location"
	KindCity        ecs.Kind = "city"
	KindPlayer      ecs.Kind = "player"
)
