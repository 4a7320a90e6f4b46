package store

import "github.com/nibzard/tareas/internal/task"

// SeedDemo adds the three demo tasks if the store is empty and reports
// whether it did.
func (s *Store) SeedDemo() bool {
	if len(s.tasks) > 0 {
		return false
	}
	for _, t := range demoTasks() {
		s.Add(t)
	}
	s.logger.Info("demo tasks loaded", "count", len(s.tasks))
	return true
}

func demoTasks() []*task.Task {
	eggs, _ := task.New("Comprar Huevos",
		task.WithDescription("Ir al súper y comprar una docena"),
		task.WithStatus(task.StatusPending),
		task.WithDifficulty(task.DifficultyEasy),
	)
	dog, _ := task.New("Pasear al perro",
		task.WithDescription("Ejercitar 30 minutos"),
		task.WithStatus(task.StatusInProgress),
		task.WithDifficulty(task.DifficultyMedium),
		task.WithDue("2025-12-01 18:00"),
	)
	db, _ := task.New("Terminar práctico de BD",
		task.WithStatus(task.StatusFinished),
		task.WithDifficulty(task.DifficultyHard),
	)
	return []*task.Task{eggs, dog, db}
}
