package estimator

import (
	"strings"
	"testing"

	"github.com/futig/property-estimator/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	details := &entity.PropertyDescription{
		Type:        entity.PropertyTypeHouse,
		Location:    "Львів, Франківський район",
		Area:        120.5,
		Rooms:       4,
		Condition:   entity.ConditionRenovated,
		Description: "гараж, ділянка 6 соток",
	}

	prompt := buildPrompt(details)

	for _, want := range []string{
		"експерт з нерухомості в Україні",
		"DIM.RIA та ЛУН",
		"- Тип: Будинок",
		"- Місцезнаходження (місто, район): Львів, Франківський район",
		"- Площа: 120.5 кв.м.",
		"- Кількість кімнат: 4",
		"- Стан: Євроремонт",
		"- Додатковий опис: гараж, ділянка 6 соток",
		"у форматі JSON",
	} {
		assert.True(t, strings.Contains(prompt, want), "prompt should contain %q", want)
	}
}

func TestBuildPrompt_EmptyDescription(t *testing.T) {
	details := entity.DefaultPropertyDescription()
	details.Location = "Одеса"

	prompt := buildPrompt(&details)

	assert.Contains(t, prompt, "- Додатковий опис: Немає")
	assert.Contains(t, prompt, "- Площа: 50 кв.м.")
	assert.Contains(t, prompt, "- Тип: Квартира")
}
