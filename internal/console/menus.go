package console

import (
	"context"
	"strconv"
	"strings"

	"github.com/nibzard/tareas/internal/store"
	"github.com/nibzard/tareas/internal/task"
)

func (a *App) mainMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.clearScreen()
		a.printf("¡Hola %s!\n\n", a.username)
		a.println("¿Qué desea hacer?\n")
		a.println("[1] Ver mis tareas")
		a.println("[2] Buscar una tarea")
		a.println("[3] Agregar una tarea")
		a.println("[0] Salir\n")

		op, err := a.choose()
		if err != nil {
			return err
		}
		switch op {
		case "1":
			err = a.viewMenu(ctx)
		case "2":
			err = a.searchMenu()
		case "3":
			err = a.addMenu()
		case "0":
			return nil
		default:
			err = a.invalidOption()
		}
		if err != nil {
			return err
		}
	}
}

// statusViews are the filtered lists offered by the view menu, keyed by
// their menu option.
var statusViews = []struct {
	option  string
	label   string
	heading string
	status  task.Status
}{
	{"2", "Pendientes", "Tareas Pendientes", task.StatusPending},
	{"3", "En curso", "Tareas En curso", task.StatusInProgress},
	{"4", "Terminadas", "Tareas Terminadas", task.StatusFinished},
	{"5", "Canceladas", "Tareas Canceladas", task.StatusCancelled},
}

func (a *App) viewMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.clearScreen()
		a.println("¿Qué tarea desea ver?\n")
		a.println("[1] Todas")
		for _, v := range statusViews {
			a.printf("[%s] %s\n", v.option, v.label)
		}
		a.println("[0] Volver\n")

		op, err := a.choose()
		if err != nil {
			return err
		}
		switch op {
		case "0":
			return nil
		case "1":
			err = a.listTasks(a.store.All(), "Todas tus tareas")
		default:
			err = a.showStatusView(op)
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) showStatusView(op string) error {
	for _, v := range statusViews {
		if v.option == op {
			return a.listTasks(a.store.FilterByStatus(v.status), v.heading)
		}
	}
	return a.invalidOption()
}

// listTasks shows tasks sorted by title and opens the one picked by number.
func (a *App) listTasks(tasks []*task.Task, heading string) error {
	sorted := store.SortByTitle(tasks)
	for {
		a.clearScreen()
		a.printf("%s.\n\n", heading)
		if len(sorted) == 0 {
			a.println("(No hay tareas para mostrar)")
			return a.pause("Presiona Enter para volver...")
		}
		for i, t := range sorted {
			a.printf("[%d] %s\n", i+1, t.Title())
		}
		a.println("\n¿Deseas ver los detalles de alguna?")
		a.println("Introduce el número para verla o 0 para volver.")

		op, err := a.choose()
		if err != nil {
			return err
		}
		if op == "0" {
			return nil
		}
		n, convErr := strconv.Atoi(op)
		if convErr != nil || n < 1 || n > len(sorted) {
			if err := a.invalidOption(); err != nil {
				return err
			}
			continue
		}
		if err := a.detailMenu(sorted[n-1]); err != nil {
			return err
		}
	}
}

func (a *App) detailMenu(t *task.Task) error {
	for {
		a.clearScreen()
		a.println("Esta es la tarea que elegiste.\n")
		a.printDetails(t)
		a.println("Si deseas editarla selecciona E, si no 0 para volver")

		op, err := a.choose()
		if err != nil {
			return err
		}
		switch op {
		case "0":
			return nil
		case "E":
			err = a.editMenu(t)
		default:
			err = a.invalidOption()
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) printDetails(t *task.Task) {
	due, hasDue := t.DueAt()
	a.printf("\t%s\n", t.Title())
	a.printf("\t%s\n", FormatDescription(t))
	a.printf("\tEstado: %s\n", t.Status().Label())
	a.printf("\tDificultad: %s\n", t.Difficulty())
	a.printf("\tVencimiento: %s\n", FormatDate(due, hasDue))
	a.printf("\tCreación: %s\n", FormatDate(t.CreatedAt(), true))
	a.printf("\tÚltima edición: %s\n\n", FormatDate(t.UpdatedAt(), true))
}

func (a *App) editMenu(t *task.Task) error {
	for {
		a.clearScreen()
		a.printf("Estas editando la tarea: %s\n", t.Title())
		a.println(" - Si deseas mantener los valores de un atributo simplemente dejalo en blanco")
		a.println(" - Si deseas dejar en blanco un atributo, escribe un espacio")
		a.println("")

		answers, err := a.askAll(
			"1. Ingresa la descripción: ",
			"2. Estado([P]endiente/[E]n curso/[T]erminada/[C]ancelada): ",
			"3. Dificultad([1]/[2]/[3]): ",
			"4. Vencimiento (YYYY-MM-DD o DD/MM/YYYY opcional HH:mm): ",
		)
		if err != nil {
			return err
		}

		applyErr := t.Apply(task.Update{
			Description: &answers[0],
			Status:      &answers[1],
			Difficulty:  &answers[2],
			Due:         &answers[3],
		})
		if applyErr == nil {
			return a.saved()
		}

		a.printf("\nError: %s\n", Message(applyErr))
		retry, err := a.confirm("¿Deseas reintentar? (S/N): ")
		if err != nil || !retry {
			return err
		}
	}
}

func (a *App) searchMenu() error {
	for {
		a.clearScreen()
		a.println("Introduce el título de una tarea para buscarla")
		q, err := a.ask("> ")
		if err != nil {
			return err
		}
		query := strings.TrimSpace(q)
		if query == "" {
			back, err := a.confirm("Búsqueda vacía. ¿Volver? (S/N): ")
			if err != nil || back {
				return err
			}
			continue
		}

		results := a.store.SearchByTitle(query)
		if len(results) == 0 {
			a.println("\nNo hay tareas relacionadas con la búsqueda.")
			return a.pause("Presiona Enter para continuar...")
		}
		return a.listTasks(results, "Estas son las tareas relacionadas")
	}
}

func (a *App) addMenu() error {
	for {
		a.clearScreen()
		a.println("Estas creando una nueva tarea.\n")

		answers, err := a.askAll(
			"1. Ingresa el título: ",
			"2. Ingresa la descripción: ",
			"3. Estado ([P]endiente/[E]n curso/[T]erminada/[C]ancelada) [Enter para P]: ",
			"4. Dificultad ([1]/[2]/[3]) [Enter para 1]: ",
			"5. Vencimiento (YYYY-MM-DD o DD/MM/YYYY opcional HH:mm) [opcional]: ",
		)
		if err != nil {
			return err
		}

		t, newErr := task.FromInput(answers[0], answers[1], answers[2], answers[3], answers[4])
		if newErr == nil {
			a.store.Add(t)
			a.logger.Debug("task added", "title", t.Title())
			return a.saved()
		}

		a.printf("\nError: %s\n", Message(newErr))
		retry, err := a.confirm("¿Deseas reintentar? (S/N): ")
		if err != nil || !retry {
			return err
		}
	}
}

// saved persists after a change and waits for the user.
func (a *App) saved() error {
	if a.save() {
		a.println("\n¡Datos guardados y archivo actualizado!")
	} else {
		a.println("\nLos cambios se conservan en memoria.")
	}
	return a.pause("Presiona Enter para continuar...")
}

func (a *App) askAll(prompts ...string) ([]string, error) {
	answers := make([]string, len(prompts))
	for i, p := range prompts {
		answer, err := a.ask(p)
		if err != nil {
			return nil, err
		}
		answers[i] = answer
	}
	return answers, nil
}
