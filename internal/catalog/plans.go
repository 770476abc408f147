package catalog

import "github.com/vertexinvest/checkout/internal/domain/model"

const (
	PlanPessoaFisica = "pessoa-fisica"
	PlanEmpresa      = "empresa"
)

// DefaultPlans returns fresh copies of the seeded plans. Prices are in cents.
func DefaultPlans() []model.Plan {
	premiumPrice := int64(4500)
	premiumText := "com acompanhamento Premium"
	subtitle := "com acompanhamento completo econômico"

	return []model.Plan{
		{
			ID:           PlanPessoaFisica,
			Title:        "Pessoa Física",
			Price:        3500,
			PremiumPrice: &premiumPrice,
			PremiumText:  &premiumText,
			Period:       "/mês",
			Commission:   "+ 5% do valor dos investimentos mensais resultantes dos investimentos Vertex",
			Features: []string{
				"Consultoria personalizada de investimentos",
				"Análise de perfil de risco",
				"Relatórios mensais de performance",
				"Suporte via WhatsApp",
				"Estratégias de diversificação",
			},
			PremiumFeatures: []string{
				"Acompanhamento semanal dedicado",
				"Consultoria em tempo real",
				"Análise técnica avançada",
				"Rebalanceamento automático de carteira",
			},
			WhatsAppMessage: "Olá! Tenho interesse no plano Pessoa Física da Vertex Investimentos. Gostaria de mais informações sobre como começar.",
		},
		{
			ID:         PlanEmpresa,
			Title:      "Empresa",
			Price:      10000,
			Period:     "/mês",
			Commission: "+ 1% do valor líquido mensal resultante dos investimentos Vertex",
			Subtitle:   &subtitle,
			Features: []string{
				"Gestão completa de portfólio corporativo",
				"Análise econômica e fiscal",
				"Planejamento estratégico financeiro",
				"Consultoria em investimentos empresariais",
				"Relatórios executivos mensais",
				"Suporte prioritário dedicado",
				"Análise de fluxo de caixa",
			},
			WhatsAppMessage: "Olá! Represento uma empresa e tenho interesse no plano Empresa da Vertex Investimentos. Gostaria de agendar uma reunião para conhecer os serviços.",
		},
	}
}
