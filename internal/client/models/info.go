package models

// ProjectInfo is returned by /getInfo and shown on the home view.
type ProjectInfo struct {
	Student     Student `json:"alumno"`
	NodeVersion string  `json:"nodeVersion"`
	Description string  `json:"description"`
}

// Student describes the author of the backend project.
type Student struct {
	Name    string `json:"nombre"`
	Grade   string `json:"grado"`
	Supervisor string `json:"profesor"`
	Group   string `json:"grupo"`
}
