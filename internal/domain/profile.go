package domain

// PendingFood bridges the two phases of logging a food item: it is set when
// the user names a food and cleared when they reply with a gram quantity.
type PendingFood struct {
	Name            string
	CaloriesPer100g float64
}

// Profile holds one user's physical attributes, targets and running
// counters. Counters only grow between initializations; initializing a
// profile always zeroes them and clears PendingFood.
type Profile struct {
	UserID int64

	WeightKG        float64
	HeightCM        float64
	Age             float64
	ActivityMinutes float64
	LifestyleFactor float64
	City            string
	TargetCalories  float64

	WaterDrunkML     float64
	CaloriesConsumed float64
	CaloriesBurned   float64

	PendingFood *PendingFood
}

// State represents user's current conversation state
type State string

const (
	StateUnregistered         State = "unregistered"
	StateIdle                 State = "idle"
	StateAwaitingFoodQuantity State = "awaiting_food_quantity"
)

// StateOf derives the conversation state from a profile snapshot.
// PendingFood is the sole discriminator between Idle and
// AwaitingFoodQuantity.
func StateOf(p *Profile) State {
	if p == nil {
		return StateUnregistered
	}
	if p.PendingFood != nil {
		return StateAwaitingFoodQuantity
	}
	return StateIdle
}

// Progress is a read-only snapshot of a user's standing against their
// daily targets. Rendering is the handler's concern.
type Progress struct {
	WaterDrunkML     float64
	WaterNeedML      float64
	WaterRemainingML float64

	CaloriesConsumed  float64
	CaloriesBurned    float64
	NetCalories       float64
	TargetCalories    float64
	BMR               float64
	CaloriesRemaining float64
}
