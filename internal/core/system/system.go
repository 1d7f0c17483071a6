package system

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseEconomy Phase = iota // 0: wallet income
	PhaseRestock              // 1: seller restock
)

// System is the interface every per-tick system implements. Update is called
// once per elapsed tick with the tick counter already advanced.
type System interface {
	Phase() Phase
	Update(tick int)
}
