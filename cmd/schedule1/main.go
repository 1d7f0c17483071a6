package main

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dustinlacewell/schedule-1/internal/config"
	"github.com/dustinlacewell/schedule-1/internal/core/ecs"
	"github.com/dustinlacewell/schedule-1/internal/data"
	"github.com/dustinlacewell/schedule-1/internal/scripting"
	"github.com/dustinlacewell/schedule-1/internal/session"
	"github.com/dustinlacewell/schedule-1/internal/view"
	"github.com/dustinlacewell/schedule-1/internal/worldgen"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner() {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m            schedule-1  v0.1.0             \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m       buy low, sell high, stay alive      \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := strconv.Itoa(count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

// ── Main game logic ───────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/game.toml"
	if p := os.Getenv("SCHEDULE1_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg = config.Default()
		} else {
			return fmt.Errorf("load config: %w", err)
		}
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner()
	printSection("Data")

	// 3. Load template registry
	reg, err := data.LoadRegistry(data.Paths{
		ItemList:     cfg.Data.ItemList,
		CityList:     cfg.Data.CityList,
		LocationList: cfg.Data.LocationList,
		NpcList:      cfg.Data.NpcList,
	})
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	printStat("Item templates", reg.Items.Count())
	printStat("City templates", reg.Cities.Count())
	printStat("Location templates", reg.Locations.Count())
	printStat("NPC templates", reg.Npcs.Count())

	// 4. Lua economy hooks
	eco, err := scripting.NewEngine(cfg.Data.ScriptsDir, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer eco.Close()
	printOK("Economy scripts loaded")

	// 5. Generate the world
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	w := worldgen.Generate(reg, worldgen.Config{
		PlayerName:    cfg.Game.PlayerName,
		StartingMoney: cfg.Game.StartingMoney,
		MaxHealth:     cfg.Game.MaxHealth,
	}, rng)
	printStat("Entities", w.EntityCount())
	log.Info("world generated", zap.Int64("seed", seed), zap.Int("entities", w.EntityCount()))
	fmt.Println()

	// 6. Run the session loop
	sess := session.New(w, reg, eco, cfg.Time, log)
	return loop(sess, reg)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// ── Command loop ──────────────────────────────────────────────────

// loop is the minimal line-command front end. It speaks only the session's
// action surface and the view projections; rejected actions show up as
// "nothing happened".
func loop(sess *session.Session, reg *data.Registry) error {
	in := bufio.NewScanner(os.Stdin)
	fmt.Println("  Type 'help' for commands.")
	render(sess, reg)

	for {
		fmt.Print("> ")
		if !in.Scan() {
			return in.Err()
		}
		fields := strings.Fields(in.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit", "q":
			return nil
		case "help", "h":
			printHelp()
		case "look", "l":
			render(sess, reg)
		case "me":
			renderPlayer(sess, reg)
		case "time":
			fmt.Println(" ", view.ClockAt(sess.World.Tick))
		case "wait":
			ticks := 60
			if len(args) > 0 {
				ticks, _ = strconv.Atoi(args[0])
			}
			sess.Wait(ticks)
			fmt.Println(" ", view.ClockAt(sess.World.Tick))
		case "enter":
			doEnter(sess, reg, args)
		case "back", "exit":
			if sess.World.CurrentNpcID != ecs.None {
				sess.StopTalking()
			} else {
				sess.ExitLocation()
			}
			render(sess, reg)
		case "talk":
			doTalk(sess, reg, args)
		case "buy":
			doTrade(sess, reg, args, sess.Buy, "bought")
		case "sell":
			doTrade(sess, reg, args, sess.Sell, "sold")
		case "heal":
			if sess.Heal(sess.World.CurrentNpcID) {
				p := view.Player(sess.World, reg)
				fmt.Printf("  Healed. Health %d/%d, $%d left.\n", p.Health, p.MaxHealth, p.Money)
			} else {
				fmt.Println("  Nothing happened.")
			}
		case "travel":
			sess.GoToTravelScreen()
			render(sess, reg)
		case "go":
			doTravel(sess, reg, args)
		default:
			fmt.Println("  Unknown command. Type 'help'.")
		}
	}
}

func printHelp() {
	fmt.Print(`  look                 show where you are
  me                   wallet, health, inventory
  time                 current in-world time
  wait [ticks]         pass time
  enter <n>            walk to the n-th location
  talk <n>             talk to the n-th NPC here
  back                 stop talking / return to city
  buy <item> [qty]     buy from the NPC you're talking to
  sell <item> [qty]    sell to the NPC you're talking to
  heal                 pay the doctor you're talking to
  travel               show travel options
  go <n>               take the n-th travel option
  quit
`)
}

func render(sess *session.Session, reg *data.Registry) {
	w := sess.World
	switch w.Screen {
	case "city":
		city := view.CurrentCity(w)
		if city == nil {
			return
		}
		fmt.Printf("  %s — %s\n", city.Name, city.Description)
		for i, loc := range view.CityLocations(w) {
			fmt.Printf("   %d. %s (%d folks)\n", i+1, loc.Name, loc.NpcCount)
		}
	case "location":
		loc := view.CurrentLocation(w)
		if loc == nil {
			return
		}
		fmt.Printf("  %s — %s\n", loc.Name, loc.Description)
		for i, npc := range view.LocationNpcs(w, reg) {
			fmt.Printf("   %d. %s\n", i+1, npc.Name)
		}
	case "npc":
		npc := view.Npc(w, reg, w.CurrentNpcID)
		if npc == nil {
			return
		}
		fmt.Printf("  %s: %q\n", npc.Name, npc.Catchphrase)
		for _, line := range npc.Stock {
			fmt.Printf("   %-14s ×%-4d $%d\n", line.Name, line.Quantity, line.UnitPrice)
		}
	case "travel":
		opts := view.TravelOptions(w)
		if len(opts) == 0 {
			fmt.Println("  No one here sells tickets.")
			return
		}
		for i, opt := range opts {
			fmt.Printf("   %d. %s — $%d\n", i+1, opt.Name, opt.Fare)
		}
	}
}

func renderPlayer(sess *session.Session, reg *data.Registry) {
	p := view.Player(sess.World, reg)
	fmt.Printf("  %s — $%d, health %d/%d\n", p.Name, p.Money, p.Health, p.MaxHealth)
	for _, line := range p.Items {
		fmt.Printf("   %-14s ×%-4d paid $%d/unit\n", line.Name, line.Quantity, line.UnitPrice)
	}
}

func doEnter(sess *session.Session, reg *data.Registry, args []string) {
	n := pickIndex(args, len(view.CityLocations(sess.World)))
	if n < 0 {
		fmt.Println("  Which location? (number from 'look')")
		return
	}
	if sess.EnterLocation(view.CityLocations(sess.World)[n].ID) {
		render(sess, reg)
	} else {
		fmt.Println("  Nothing happened.")
	}
}

func doTalk(sess *session.Session, reg *data.Registry, args []string) {
	npcs := view.LocationNpcs(sess.World, reg)
	n := pickIndex(args, len(npcs))
	if n < 0 {
		fmt.Println("  Which NPC? (number from 'look')")
		return
	}
	if sess.TalkToNpc(npcs[n].ID) {
		render(sess, reg)
	} else {
		fmt.Println("  Nothing happened.")
	}
}

func doTrade(sess *session.Session, reg *data.Registry, args []string, action func(ecs.EntityID, string, int) bool, verb string) {
	if len(args) == 0 {
		fmt.Println("  Which item?")
		return
	}
	qty := 1
	if len(args) > 1 {
		qty, _ = strconv.Atoi(args[1])
	}
	if action(sess.World.CurrentNpcID, args[0], qty) {
		p := view.Player(sess.World, reg)
		fmt.Printf("  You %s %d × %s. $%d left.\n", verb, qty, reg.ItemName(args[0]), p.Money)
	} else {
		fmt.Println("  Nothing happened.")
	}
}

func doTravel(sess *session.Session, reg *data.Registry, args []string) {
	opts := view.TravelOptions(sess.World)
	n := pickIndex(args, len(opts))
	if n < 0 {
		fmt.Println("  Which destination? (number from 'travel')")
		return
	}
	opt := opts[n]
	if sess.Travel(opt.CityID, opt.Fare, -1) {
		fmt.Printf("  Welcome to %s. It is now %s.\n", opt.Name, view.ClockAt(sess.World.Tick))
		render(sess, reg)
	} else {
		fmt.Println("  Nothing happened.")
	}
}

// pickIndex parses a 1-based index argument; -1 means invalid.
func pickIndex(args []string, max int) int {
	if len(args) == 0 {
		return -1
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > max {
		return -1
	}
	return n - 1
}
