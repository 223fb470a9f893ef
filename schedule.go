package cellforge

import (
	"fmt"
)

// Stage is a named slot in the generation pipeline. Stages run once,
// in registration order, when the app runs.
type Stage struct {
	Name string
}

var (
	Setup    = Stage{Name: "Setup"}
	Generate = Stage{Name: "Generate"}
	Assemble = Stage{Name: "Assemble"}
	Export   = Stage{Name: "Export"}
)

type systemScheduleBuilder struct {
	inStage Stage
	system  systemFn
}

// System starts a schedule for the given system function. Systems default
// to the Generate stage.
func System(system systemFn) systemScheduleBuilder {
	return systemScheduleBuilder{
		system:  system,
		inStage: Generate,
	}
}

func (sched systemScheduleBuilder) InStage(s Stage) systemScheduleBuilder {
	return systemScheduleBuilder{
		system:  sched.system,
		inStage: s,
	}
}

func (app *App) UseSystem(system systemScheduleBuilder) *App {
	if _, ok := app.systems[system.inStage.Name]; !ok {
		panic(fmt.Sprintf("Stage %v doesn't exist", system.inStage.Name))
	}
	app.systems[system.inStage.Name] = append(app.systems[system.inStage.Name], system.system)
	return app
}
