package pattern

import "github.com/Veraticus/gastx/internal/model"

// TierPatterns holds the pattern strings of one category, grouped by tier.
type TierPatterns map[model.Tier][]string

// DefaultPatterns returns the built-in catalogue patterns. Patterns are
// lowercase regular expressions matched case-insensitively anywhere in the
// description. Brand names sit in the high tier, generic merchant words in
// medium, and loose hints in low.
func DefaultPatterns() map[model.Category]TierPatterns {
	return map[model.Category]TierPatterns{
		model.CategoryTransport: {
			model.TierHigh: {
				`\buber\b`, `\b99\s?(app|taxi|pop)?\b`, `\bcabify\b`,
				`\btaxi\b`, `\blyft\b`, `\bindriver\b`,
			},
			model.TierMedium: {
				`posto`, `combustivel`, `gasolina`, `shell`, `ipiranga`,
				`petrobras`, `br\s?distribuidora`, `estacionamento`, `parking`,
				`estapar`, `zona\s?azul`,
			},
			model.TierLow: {
				`ride`, `trip`, `corrida`,
			},
		},
		model.CategoryFood: {
			model.TierHigh: {
				`\bifood\b`, `\bifd\*`, `\brappi\b`, `\bubereats\b`,
				`\bmcdonald`, `\bburger\s?king\b`, `\bsubway\b`, `\bbobs\b`,
				`\bkfc\b`, `\bpizza\s?hut\b`, `\bdominos\b`, `\bhabibs\b`,
				`\bgiraffa`, `\boutback\b`, `\bmadero\b`,
			},
			model.TierMedium: {
				`restaurante`, `lanchonete`, `pizzaria`, `burger`, `lanches`,
				`lanche`, `padaria`, `panificadora`, `cafe`, `coffee`,
				`supermercado`, `mercado`, `hortifruti`, `açougue`, `acougue`,
				`sorvetes`, `sorveteria`, `chiquinho`, `acai`, `doceria`,
				`confeitaria`, `pub`, `bar\b`, `cervejaria`, `churrascaria`,
				`cantina`, `buffet`, `sushi`, `japa`, `temaki`,
			},
			model.TierLow: {
				`comida`, `almoco`, `jantar`, `refeicao`,
			},
		},
		model.CategoryHealth: {
			model.TierHigh: {
				`\bdrogasil\b`, `\bdroga\s?raia\b`, `\bpague\s?menos\b`,
				`\bpanvel\b`, `\bdrogaria\b`, `\bredepharma\b`,
				`\bunimed\b`, `\bamil\b`, `\bbradesco\s?saude\b`,
			},
			model.TierMedium: {
				`farmacia`, `farma`, `pharma`, `hospital`, `clinica`,
				`consultorio`, `medico`, `dentista`, `odonto`, `laboratorio`,
				`exame`, `radiologia`, `raio\s?x`, `ultrassom`, `fisioterapia`,
				`psicolog`, `terapia`, `nutri`,
			},
			model.TierLow: {
				`saude`, `health`, `med\b`,
			},
		},
		model.CategoryPersonalCare: {
			model.TierHigh: {
				`barbearia`, `barbeiro`, `salao`, `salon`, `cabeleleiro`,
			},
			model.TierMedium: {
				`cabelo`, `manicure`, `pedicure`, `estetica`, `beleza`,
				`spa\b`, `massagem`, `depilacao`, `sobrancelha`, `unha`,
				`cosmetico`, `perfumaria`,
			},
			model.TierLow: {},
		},
		model.CategoryShopping: {
			model.TierHigh: {
				`\bamazon\b`, `\bmercado\s?livre\b`, `\bshopee\b`, `\bshein\b`,
				`\baliexpress\b`, `\bmagazine\s?luiza\b`, `\bmagalu\b`,
				`\bcasas\s?bahia\b`, `\bamericanas\b`, `\bsubmarino\b`,
				`\bponto\s?frio\b`, `\bextra\.com\b`, `\bcarrefour\b`,
			},
			model.TierMedium: {
				`loja`, `store`, `shop`, `eletronico`, `celular`,
				`smartphone`, `informatica`, `moveis`, `decoracao`,
				`roupas`, `calcados`, `tenis`, `moda`, `vestuario`,
			},
			model.TierLow: {
				`compra`, `purchase`,
			},
		},
		model.CategoryEntertainment: {
			model.TierHigh: {
				`\bnetflix\b`, `\bspotify\b`, `\bdisney\s?\+?\b`, `\bhbo\b`,
				`\bprime\s?video\b`, `\byoutube\s?premium\b`, `\btwitch\b`,
				`\bsteam\b`, `\bplaystation\b`, `\bxbox\b`, `\bnintendo\b`,
				`\bepic\s?games\b`, `\briot\b`, `\bblizzard\b`,
			},
			model.TierMedium: {
				`cinema`, `cinemark`, `cinepolis`, `teatro`, `show`,
				`ingresso`, `evento`, `parque`, `diversao`, `game`,
				`jogo`, `streaming`, `musica`, `podcast`, `avalanche`,
			},
			model.TierLow: {
				`lazer`, `entretenimento`, `diversao`,
			},
		},
		model.CategorySubscriptions: {
			model.TierHigh: {
				`\bchatgpt\b`, `\bopenai\b`, `\bgithub\b`, `\bmicrosoft\s?365\b`,
				`\bicloud\b`, `\bgoogle\s?one\b`, `\bdropbox\b`, `\bcanva\b`,
				`\badobe\b`, `\bnotion\b`, `\bslack\b`, `\bzoom\b`,
			},
			model.TierMedium: {
				`assinatura`, `mensalidade`, `plano`, `premium`, `subscription`,
				`anual`, `mensal`, `recorrente`,
			},
			model.TierLow: {
				`subscr`,
			},
		},
		model.CategoryHome: {
			model.TierHigh: {
				`\bceee\b`, `\bcopel\b`, `\beletropaulo\b`, `\blight\b`,
				`\bsabesp\b`, `\bcomgas\b`, `\bclaro\b`, `\bvivo\b`,
				`\btim\b`, `\boi\b`, `\bnet\b`,
			},
			model.TierMedium: {
				`luz`, `energia`, `eletric`, `agua`, `gas\b`, `internet`,
				`telefone`, `celular`, `aluguel`, `condominio`, `iptu`,
				`manutencao`, `reforma`, `construcao`, `material`, `obra`,
			},
			model.TierLow: {
				`casa`, `residencia`, `moradia`,
			},
		},
		model.CategoryEducation: {
			model.TierHigh: {
				`\budemy\b`, `\bcoursera\b`, `\balura\b`, `\brocketseat\b`,
				`\bduolingo\b`, `\bskill\s?share\b`, `\blinkedin\s?learning\b`,
				`\bhotmart\b`, `\beduzz\b`,
			},
			model.TierMedium: {
				`curso`, `escola`, `faculdade`, `universidade`, `colegio`,
				`livro`, `livraria`, `apostila`, `material\s?escolar`,
				`mensalidade\s?escolar`, `educacao`, `ensino`,
			},
			model.TierLow: {
				`aprend`, `estud`, `aula`,
			},
		},
		model.CategoryTransfers: {
			model.TierHigh: {
				`\bpix\b`, `transferencia\s?pix`, `\bted\b`, `\bdoc\b`,
			},
			model.TierMedium: {
				`transferencia`, `enviado\s?para`, `recebido\s?de`,
				`pagamento\s?para`,
			},
			model.TierLow: {},
		},
		model.CategoryFitness: {
			model.TierHigh: {
				`\bsmart\s?fit\b`, `\bblufit\b`, `\bselfit\b`, `\bbio\s?ritmo\b`,
				`\bcrossfit\b`, `\bnatacao\b`, `\bfutebol\b`, `\btenis\b`,
			},
			model.TierMedium: {
				`academia`, `gym`, `fitness`, `esporte`, `sport`,
				`treino`, `personal`, `pilates`, `yoga`, `danca`,
				`moove`, `power`, `luta`, `jiu\s?jitsu`, `boxe`,
			},
			model.TierLow: {
				`exercicio`, `atividade\s?fisica`,
			},
		},
		model.CategoryInvestments: {
			model.TierHigh: {
				`\bnu\s?invest\b`, `\bxp\b`, `\bbtg\b`, `\brico\b`,
				`\bclear\b`, `\bmodalmais\b`, `\binter\s?invest\b`,
			},
			model.TierMedium: {
				`investimento`, `aplicacao`, `resgate`, `rendimento`,
				`dividendo`, `acao`, `fundo`, `cdb`, `tesouro`,
			},
			model.TierLow: {},
		},
		model.CategoryTaxes: {
			model.TierHigh: {
				`\biof\b`, `\birpf\b`, `\binss\b`, `\bfgts\b`,
			},
			model.TierMedium: {
				`imposto`, `taxa`, `tarifa`, `anuidade`, `multa`,
				`juros`, `encargo`, `tributo`,
			},
			model.TierLow: {},
		},
	}
}
