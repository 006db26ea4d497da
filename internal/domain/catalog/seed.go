package catalog

import "github.com/shopspring/decimal"

// Seed returns the launch catalog: the five house flavors with their
// prices, ingredient lists and existing reviews.
func Seed() []Item {
	return []Item{
		{
			ID:     1,
			Name:   "Cupcake Chocolate",
			Price:  decimal.RequireFromString("8.50"),
			Image:  "https://picsum.photos/id/25/200/200",
			Weight: 100,
			Ingredients: []string{
				"Farinha de Trigo", "Açúcar", "Chocolate em Pó 50%", "Ovos",
				"Leite", "Óleo Vegetal", "Gotas de Chocolate",
			},
			Reviews: []Review{
				{User: "Ana P.", Rating: 5, Comment: "Simplesmente o melhor cupcake de chocolate que já comi! Molhadinho e com muito recheio."},
				{User: "Carlos S.", Rating: 4, Comment: "Muito bom, mas poderia ter um pouco mais de gotas de chocolate."},
			},
		},
		{
			ID:     2,
			Name:   "Cupcake Nutella",
			Price:  decimal.RequireFromString("9.00"),
			Image:  "https://picsum.photos/id/102/200/200",
			Weight: 100,
			Ingredients: []string{
				"Farinha de Trigo", "Açúcar", "Ovos", "Leite", "Nutella",
				"Avelãs Trituradas",
			},
			Reviews: []Review{
				{User: "Juliana M.", Rating: 5, Comment: "Perfeito! O recheio de Nutella é super generoso."},
				{User: "Ricardo F.", Rating: 5, Comment: "Combinação incrível. A avelã por cima dá um toque especial."},
			},
		},
		{
			ID:     3,
			Name:   "Cupcake Red Velvet",
			Price:  decimal.RequireFromString("9.50"),
			Image:  "https://picsum.photos/id/326/200/200",
			Weight: 100,
			Ingredients: []string{
				"Farinha de Trigo", "Açúcar", "Buttermilk", "Corante Vermelho",
				"Vinagre", "Cream Cheese Frosting",
			},
			Reviews: []Review{
				{User: "Fernanda L.", Rating: 5, Comment: "Massa super fofinha e a cobertura é divina. Meu favorito!"},
				{User: "Lucas G.", Rating: 4, Comment: "Gostoso, mas um pouco doce demais para o meu paladar."},
			},
		},
		{
			ID:     4,
			Name:   "Cupcake Ninho",
			Price:  decimal.RequireFromString("8.75"),
			Image:  "https://picsum.photos/id/367/200/200",
			Weight: 100,
			Ingredients: []string{
				"Farinha de Trigo", "Açúcar", "Ovos", "Leite Ninho",
				"Leite Condensado", "Creme de Leite",
			},
			Reviews: []Review{
				{User: "Beatriz C.", Rating: 5, Comment: "Para quem ama Leite Ninho, não tem erro. É maravilhoso!"},
				{User: "Tiago R.", Rating: 5, Comment: "Sabor de infância. Muito bem feito."},
			},
		},
		{
			ID:     5,
			Name:   "Cupcake Limão",
			Price:  decimal.RequireFromString("8.50"),
			Image:  "https://picsum.photos/id/405/200/200",
			Weight: 100,
			Ingredients: []string{
				"Farinha de Trigo", "Açúcar", "Ovos", "Suco de Limão",
				"Raspas de Limão", "Merengue Suíço",
			},
			Reviews: []Review{
				{User: "Mariana A.", Rating: 5, Comment: "O azedinho do limão com o doce do merengue é perfeito. Adorei!"},
				{User: "João V.", Rating: 4, Comment: "Muito refrescante. A cobertura de merengue é ótima."},
			},
		},
	}
}
