package responder

import "schoolwidget/internal/models"

// DefaultTable returns the built-in answer table. Rule and date answers quote
// school, so the table must be rebuilt if the school info changes.
//
// Order matters: earlier entries win when several keys match.
func DefaultTable(school models.SchoolInfo) []models.AnswerEntry {
	return []models.AnswerEntry{
		{ID: "pomodoro", Keys: []string{"pomodoro", "pomodor"}, Text: "⏳ Técnica Pomodoro: estude 25 min focado, faça 5 min de pausa. A cada 4 ciclos, descanse 15–30 min."},
		{ID: "mind_map", Keys: []string{"mapa mental", "mapa"}, Text: "🧩 Mapa mental: organize as ideias em diagramas com cores e setas."},
		{ID: "summary", Keys: []string{"resumo", "resumos"}, Text: "📑 Faça resumos com suas palavras e perguntas-chave."},
		{ID: "flashcards", Keys: []string{"flashcard", "flashcards"}, Text: "🃏 Flashcards: cartões com pergunta de um lado e resposta do outro."},
		{ID: "spaced_review", Keys: []string{"revisão espaçada", "revisão"}, Text: "📆 Revisão espaçada: hoje, 1 dia, 1 semana, 1 mês."},
		{ID: "feynman", Keys: []string{"feynman", "técnica feynman"}, Text: "🎤 Técnica Feynman: explique o conteúdo como se fosse pra uma criança."},
		{ID: "uniform", Keys: []string{"uniforme", "regra de uniforme"}, Text: "👕 Regra de uniforme: " + school.Rules.Uniform},
		{ID: "phone", Keys: []string{"celular", "uso de celular", "cel"}, Text: "📱 Regra de celular: " + school.Rules.Phone},
		{ID: "library", Keys: []string{"biblioteca", "silêncio"}, Text: "📚 Regra da biblioteca: " + school.Rules.Library},
		{ID: "science_fair", Keys: []string{"feira", "feira de ciências"}, Text: "📅 Feira de Ciências: " + school.Dates.ScienceFair},
		{ID: "exams", Keys: []string{"prova", "provas", "teste", "testes"}, Text: "📝 Próximas provas: " + school.Dates.Exams},
		{ID: "parent_meeting", Keys: []string{"reunião", "reunião de pais", "pais"}, Text: "📅 Reunião de pais: " + school.Dates.ParentMeeting},
	}
}
