package app

// App wires the usecases to an assumptions source.
type App struct {
	source Source
}

func New(source Source) *App {
	return &App{source: source}
}
