package dto

type ConsultaDTO struct {
	ID       uint   `json:"id"`
	Data     string `json:"data"`
	Horario  string `json:"horario"`
	Paciente string `json:"paciente"`
	Medico   string `json:"medico"`
	Status   string `json:"status"`
}
