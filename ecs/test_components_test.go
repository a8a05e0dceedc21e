package ecs_test

type Counter struct {
	Value int
}

type Settings struct {
	Name  string
	Speed float64
}

type Log struct {
	Lines []string
}
