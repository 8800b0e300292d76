package database

import "time"

// UsuarioModel é o model GORM que materializa o contrato da tabela Usuarios:
// id autoincrement, nome até 100, email até 255 com índice único, senha até
// 255, telefone opcional até 20, ativo com default true e data_atualizacao
// nula até a primeira alteração.
type UsuarioModel struct {
	ID              int        `gorm:"column:id;primaryKey;autoIncrement"`
	Nome            string     `gorm:"column:nome;type:varchar(100);not null"`
	Email           string     `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	Senha           string     `gorm:"column:senha;type:varchar(255);not null"`
	DataNascimento  time.Time  `gorm:"column:data_nascimento;not null"`
	Telefone        *string    `gorm:"column:telefone;type:varchar(20)"`
	Ativo           bool       `gorm:"column:ativo;not null;default:true"`
	DataCriacao     time.Time  `gorm:"column:data_criacao;not null"`
	DataAtualizacao *time.Time `gorm:"column:data_atualizacao"`
}

func (UsuarioModel) TableName() string {
	return "Usuarios"
}
