package penalty_test

import (
	"fmt"

	"github.com/katalvlaran/minimax/penalty"
)

// ExampleKick_Analyze solves the empirical penalty-kick game: neither
// player may favor a direction the other could exploit, so both mix across
// all three. Complexity: one Simplex solve plus one 3x3 elimination.
func ExampleKick_Analyze() {
	// 1) Load the Palacios-Huerta success rates.
	k := penalty.Default()

	// 2) Map them onto payoffs and solve the zero-sum game.
	a, err := k.Analyze()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Report the equilibrium in football terms.
	fmt.Println("kicker:", a.KickerString())
	fmt.Println("goalkeeper:", a.GoalkeeperString())
	fmt.Printf("goal probability: %.1f%%\n", a.GoalProbability*100)
	// Output:
	// kicker: Left: 34.1%, Center: 27.7%, Right: 38.2%
	// goalkeeper: Left: 44.5%, Center: 12.1%, Right: 43.5%
	// goal probability: 78.3%
}

// ExampleKick_ExpectedGoalProbability prices a fixed plan instead of the
// equilibrium: when the kicker always goes left and the keeper always
// dives left, the scoring chance is just that one cell.
func ExampleKick_ExpectedGoalProbability() {
	k := penalty.Default()

	p, err := k.ExpectedGoalProbability(
		[]float64{1, 0, 0}, // kicker: always left
		[]float64{1, 0, 0}, // keeper: always dives left
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("goal probability: %.0f%%\n", p*100)
	// Output: goal probability: 58%
}
