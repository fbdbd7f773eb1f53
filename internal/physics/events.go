package physics

// Event is something the engine observed during one update. The engine
// never folds events into score or lives; the caller does.
type Event interface {
	isEvent()
}

// CoinCollectedEvent is emitted once per coin, when it is picked up.
type CoinCollectedEvent struct {
	Coin int // index into World.Coins
}

// EnemyStompedEvent is emitted when the player lands on an enemy.
type EnemyStompedEvent struct {
	Enemy int // index into World.Enemies
}

// PlayerHitEvent is emitted when an active enemy touches a vulnerable player.
type PlayerHitEvent struct {
	Enemy int
}

// PlayerFellEvent is emitted when the player drops out of the viewport.
// The player has already been respawned.
type PlayerFellEvent struct{}

// CastleReachedEvent is emitted once, when the open castle is reached.
type CastleReachedEvent struct{}

func (CoinCollectedEvent) isEvent() {}
func (EnemyStompedEvent) isEvent()  {}
func (PlayerHitEvent) isEvent()     {}
func (PlayerFellEvent) isEvent()    {}
func (CastleReachedEvent) isEvent() {}
