// internal/app/game.go
package app

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/system"
	"go-survivors/internal/utils"
)

// TickResult — всё, что внешнему слою нужно знать об одном тике: терминальные
// сигналы и косметические заявки, которые рендер может игнорировать.
type TickResult struct {
	LeveledUp   bool
	Offers      []UpgradeChoice
	ChestPicked bool
	GameOver    bool
	FinalScore  int

	DamageNumbers []event.VisualPayload
	HitSparks     []event.VisualPayload
	Dodges        []event.VisualPayload
	Warnings      []event.WarningPayload
	ShakePower    float64
}

// Game holds the main game state and logic.
// Симуляция строго однопоточная: один Advance выполняется целиком до
// следующего; внешний наблюдатель (HUD) читает State только на чтение.
type Game struct {
	State *entity.SimState

	MovementSystem    *system.MovementSystem
	SpawnSystem       *system.SpawnSystem
	AISystem          *system.AISystem
	WeaponSystem      *system.WeaponSystem
	ProjectileSystem  *system.ProjectileSystem
	CollisionSystem   *system.CollisionSystem
	PickupSystem      *system.PickupSystem
	ProgressionSystem *system.ProgressionSystem

	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	// Пауза режима (меню) и пауза ожидания выбора награды — разные вещи:
	// первая внешняя, вторая ставится самой симуляцией.
	isPaused      bool
	pendingOffers []UpgradeChoice

	hitStop  int
	gameOver bool

	result *TickResult
}

// NewGame initializes a new game instance. Нулевой сид — случайный.
func NewGame(seed int64) *Game {
	state := entity.NewSimState()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		State:           state,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
	}
	g.MovementSystem = system.NewMovementSystem(state)
	g.SpawnSystem = system.NewSpawnSystem(state, eventDispatcher, rng)
	g.AISystem = system.NewAISystem(state, eventDispatcher, rng)
	g.WeaponSystem = system.NewWeaponSystem(state, eventDispatcher, rng)
	g.ProjectileSystem = system.NewProjectileSystem(state)
	g.CollisionSystem = system.NewCollisionSystem(state, eventDispatcher, rng)
	g.PickupSystem = system.NewPickupSystem(state, eventDispatcher)
	g.ProgressionSystem = system.NewProgressionSystem(state, eventDispatcher)

	// Стартовое оружие.
	state.Player.Weapons = append(state.Player.Weapons, &component.Weapon{
		DefID: "WEAPON_BOLT",
		Level: 1,
	})

	eventDispatcher.Subscribe(event.EnemyKilled, g)
	eventDispatcher.Subscribe(event.LevelUp, g)
	eventDispatcher.Subscribe(event.ChestPicked, g)
	eventDispatcher.Subscribe(event.HitStopRequest, g)
	eventDispatcher.Subscribe(event.DamageNumber, g)
	eventDispatcher.Subscribe(event.HitSpark, g)
	eventDispatcher.Subscribe(event.Dodged, g)
	eventDispatcher.Subscribe(event.ScreenShake, g)
	eventDispatcher.Subscribe(event.ChargeWarning, g)
	eventDispatcher.Subscribe(event.BossWarning, g)

	return g
}

// Advance прогоняет один тик симуляции. Порядок фиксированный: ввод и
// движение игрока, спавнер, AI всех врагов, оружие, полёт снарядов,
// коллизии, отложенные события, уборка, пикапы, прогрессия, терминальные
// проверки. Внутри тика никто не уступает управление.
func (g *Game) Advance(moveX, moveY float64, dashRequested bool) *TickResult {
	g.result = &TickResult{}

	if g.gameOver || g.isPaused || g.IsSelectionPending() {
		// Геймплейный ввод отвергается; рендер продолжает жить снаружи.
		return g.result
	}

	if g.hitStop > 0 {
		// Стоп-кадр: физика, AI и коллизии замирают, косметика затухает сама.
		g.hitStop--
		g.decayCosmetics()
		return g.result
	}

	g.State.Tick++

	g.MovementSystem.Update(moveX, moveY, dashRequested)
	g.SpawnSystem.Update()
	g.AISystem.Update()
	g.WeaponSystem.Update()
	g.ProjectileSystem.Update()
	g.CollisionSystem.Update()

	// Смерти врагов разбираются после того, как все пары тика оценены.
	g.EventDispatcher.Flush()
	g.cleanupDestroyedEntities()

	g.PickupSystem.Update()
	g.ProgressionSystem.Update()

	if g.State.Player.HP <= 0 && !g.gameOver {
		// Ноль здоровья кончает игру мгновенно, без прощального кадра.
		g.gameOver = true
		g.result.GameOver = true
		g.result.FinalScore = g.State.Score
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: g.State.Score})
	}

	return g.result
}

// OnEvent реализует интерфейс event.Listener.
func (g *Game) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if enemy, ok := e.Data.(*component.Enemy); ok {
			g.handleEnemyKilled(enemy)
		}
	case event.LevelUp:
		g.result.LeveledUp = true
		g.pendingOffers = g.GenerateUpgradeChoices()
		g.result.Offers = g.pendingOffers
	case event.ChestPicked:
		g.result.ChestPicked = true
		if essence, ok := e.Data.(float64); ok {
			p := g.State.Player
			p.BloodEssence = utils.Clamp(p.BloodEssence+essence, 0, p.MaxBloodEssence)
		}
		g.pendingOffers = g.GenerateUpgradeChoices()
		g.result.Offers = g.pendingOffers
	case event.HitStopRequest:
		if ticks, ok := e.Data.(int); ok && ticks > g.hitStop {
			g.hitStop = ticks
		}
	case event.DamageNumber:
		if p, ok := e.Data.(event.VisualPayload); ok {
			g.result.DamageNumbers = append(g.result.DamageNumbers, p)
		}
	case event.HitSpark:
		if p, ok := e.Data.(event.VisualPayload); ok {
			g.result.HitSparks = append(g.result.HitSparks, p)
		}
	case event.Dodged:
		if p, ok := e.Data.(event.VisualPayload); ok {
			g.result.Dodges = append(g.result.Dodges, p)
		}
	case event.ScreenShake:
		if power, ok := e.Data.(float64); ok && power > g.result.ShakePower {
			g.result.ShakePower = power
		}
	case event.ChargeWarning, event.BossWarning:
		if p, ok := e.Data.(event.WarningPayload); ok {
			g.result.Warnings = append(g.result.Warnings, p)
		}
	}
}

// handleEnemyKilled: счёт и дроп. Элитные враги оставляют сундук.
func (g *Game) handleEnemyKilled(enemy *component.Enemy) {
	g.State.Score += enemy.Score

	drop := &component.Drop{
		X:      enemy.X,
		Y:      enemy.Y,
		Radius: config.OrbRadius,
		Value:  float64(enemy.Score),
		Kind:   component.DropOrb,
	}
	if enemy.IsElite {
		drop.Radius = config.ChestRadius
		drop.Value = config.ChestEssence
		drop.Kind = component.DropChest
	}
	g.State.AddDrop(drop)

	// Спавнеру нужно знать о гибели босса.
	g.SpawnSystem.OnEvent(event.Event{Type: event.EnemyKilled, Data: enemy})
}

// cleanupDestroyedEntities удаляет всё помеченное, единым проходом после
// оценки всех взаимодействий. Ни одна система не удаляет сущности сама.
func (g *Game) cleanupDestroyedEntities() {
	for id, enemy := range g.State.Enemies {
		if enemy.Dead {
			delete(g.State.Enemies, id)
		}
	}
	for id, proj := range g.State.Projectiles {
		if proj.Dead {
			delete(g.State.Projectiles, id)
		}
	}
	for id, drop := range g.State.Drops {
		if drop.Dead {
			delete(g.State.Drops, id)
		}
	}
}

// decayCosmetics — во время стоп-кадра гаснут только визуальные таймеры.
func (g *Game) decayCosmetics() {
	if g.State.Player.HitFlash > 0 {
		g.State.Player.HitFlash--
	}
	for _, enemy := range g.State.Enemies {
		if enemy.HitFlash > 0 {
			enemy.HitFlash--
		}
	}
}

// --- Public Accessors & Mutators ---

// IsSelectionPending: симуляция стоит, пока игрок не выбрал награду.
func (g *Game) IsSelectionPending() bool {
	return len(g.pendingOffers) > 0
}

func (g *Game) PendingOffers() []UpgradeChoice {
	return g.pendingOffers
}

func (g *Game) IsGameOver() bool {
	return g.gameOver
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) SetPaused(paused bool) {
	g.isPaused = paused
}

func (g *Game) Score() int {
	return g.State.Score
}

// EquippedWeapon возвращает оружие по ID определения, если оно есть.
func (g *Game) EquippedWeapon(defID string) (*component.Weapon, bool) {
	for _, w := range g.State.Player.Weapons {
		if w.DefID == defID {
			return w, true
		}
	}
	return nil, false
}

// FindWeaponDef — обёртка поверх библиотеки определений.
func (g *Game) FindWeaponDef(defID string) (defs.WeaponDefinition, bool) {
	def, ok := defs.WeaponLibrary[defID]
	return def, ok
}
