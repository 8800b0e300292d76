package dto

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const idadeMinima = 18

var telefoneRegex = regexp.MustCompile(`^\(\d{2}\)\s\d{5}-\d{4}$`)

// RegisterCustomValidations registra as regras de negócio no validador
// usado pelo binding do Gin: maioridade (idade mínima de 18 anos) e
// telefone (formato (XX) XXXXX-XXXX). Também faz os erros reportarem o
// nome do campo como aparece no JSON.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator engine is not *validator.Validate")
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("maioridade", validarMaioridade); err != nil {
		return err
	}
	return v.RegisterValidation("telefone", validarTelefone)
}

func validarMaioridade(fl validator.FieldLevel) bool {
	nascimento, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return CalcularIdade(nascimento, time.Now().UTC()) >= idadeMinima
}

func validarTelefone(fl validator.FieldLevel) bool {
	telefone, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	// Vazio conta como ausente e sempre passa; omitempty já cuida do
	// caso nil.
	if telefone == "" {
		return true
	}
	return telefoneRegex.MatchString(telefone)
}

// CalcularIdade calcula a idade em anos completos na data de referência.
// O desconto de um ano acontece quando o aniversário ainda não chegou:
// a referência recua a idade em anos preservando mês e dia, com 29 de
// fevereiro recuando para 28 quando o ano de destino não é bissexto.
func CalcularIdade(nascimento, referencia time.Time) int {
	nasc := apenasData(nascimento)
	ref := apenasData(referencia)

	idade := ref.Year() - nasc.Year()
	if nasc.After(recuarAnos(ref, idade)) {
		idade--
	}
	return idade
}

func apenasData(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func recuarAnos(data time.Time, anos int) time.Time {
	ano := data.Year() - anos
	mes := data.Month()
	dia := data.Day()
	if mes == time.February && dia == 29 && !anoBissexto(ano) {
		dia = 28
	}
	return time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
}

func anoBissexto(ano int) bool {
	return ano%4 == 0 && (ano%100 != 0 || ano%400 == 0)
}

// TraduzirErrosValidacao converte os erros do validador em pares
// campo/mensagem. Todas as violações são reportadas de uma vez; a
// mensagem de cada campo vem do i18n pela chave validation.<campo>.<tag>.
func TraduzirErrosValidacao(c *gin.Context, err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	saida := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		campo := fe.Field()
		chave := "validation." + strings.ToLower(campo) + "." + fe.Tag()
		saida = append(saida, ValidationError{
			Field:   campo,
			Message: T(c, chave),
			Tag:     fe.Tag(),
		})
	}
	return saida
}
