package domain

// Cliente mirrors the gateway's guest resource. Only ID, Nome and CPF are
// guaranteed once persisted; every other field may be absent and is rendered
// with a placeholder downstream.
type Cliente struct {
	ID                  int    `json:"id,omitempty"`
	Nome                string `json:"nome"`
	CPF                 string `json:"cpf"`
	Email               string `json:"email,omitempty"`
	Profissao           string `json:"profissao,omitempty"`
	Nacionalidade       string `json:"nacionalidade,omitempty"`
	DataNascimento      string `json:"dataNascimento,omitempty"`
	Sexo                string `json:"sexo,omitempty"`
	RG                  string `json:"rg,omitempty"`
	Residencia          string `json:"residencia,omitempty"`
	CEP                 string `json:"cep,omitempty"`
	Cidade              string `json:"cidade,omitempty"`
	Pais                string `json:"pais,omitempty"`
	TelefoneResidencial string `json:"telefoneResidencial,omitempty"`
	TelefoneComercial   string `json:"telefoneComercial,omitempty"`
	MotivoViagem        string `json:"motivoViagem,omitempty"`
	MeioTransporte      string `json:"meioTransporte,omitempty"`
	ProximoDestino      string `json:"proximoDestino,omitempty"`
}

// ClienteSummary is the lightweight shape returned by the name-filtered
// lookup and offered as typeahead candidates.
type ClienteSummary struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}
