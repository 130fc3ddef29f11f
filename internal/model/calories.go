package model

// CalorieGoal mirrors the daily goal separately from CalorieData.
// It predates CalorieData and is kept in sync by the store.
type CalorieGoal struct {
	DailyGoal int `json:"dailyGoal"`
}

// CalorieData tracks today's calorie intake against the daily goal.
// Consumed and Burned accumulate via additive updates.
type CalorieData struct {
	Goal     int `json:"goal"`
	Consumed int `json:"consumed"`
	Burned   int `json:"burned"`
}

// Remaining returns goal - (consumed - burned). The stored value may go
// negative; clamping happens only at the presentation boundary.
func (c CalorieData) Remaining() int {
	return c.Goal - (c.Consumed - c.Burned)
}
