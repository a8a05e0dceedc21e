package game_test

import (
	"fmt"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

func Example() {
	session := tetris.NewSession(tetris.NewBoard(10, 20), tetris.NewSeededCatalog(1))
	r := game.New(session)

	r.Push(tetris.MoveDown)
	r.Push(tetris.MoveDown)
	r.Step(1.0 / 60)

	fmt.Println("row:", r.Session().Active.Y)
	fmt.Println("over:", r.Over())

	// Output:
	// row: 2
	// over: false
}
