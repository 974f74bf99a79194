package seed

import "github.com/verdantis/herbal-life/backend/internal/types"

var doctors = []doctorData{
	{Name: "Dr. Deepak Chopra", Email: "deepak.chopra@example.com"},
	{Name: "Dr. Vasant Lad", Email: "vasant.lad@example.com"},
}

var plants = []types.CreatePlantRequest{
	{
		Name:           "Neem",
		ScientificName: "Azadirachta indica",
		Description:    "Neem is one of the most important medicinal plants in India. Its leaves, bark, and seeds have been used in Ayurvedic medicine for thousands of years.",
		Usage:          "Leaves are chewed fresh or used in tea; neem oil is used for hair and skincare.",
		Category:       "Ayurvedic Medicinal Plants",
		Image:          "/static/images/neem.png",
		Benefits:       []string{"Antibacterial", "Antifungal", "Anti-inflammatory", "Immune-boosting", "Treats skin disorders", "Improves oral health", "Controls blood sugar levels"},
	},
	{
		Name:           "Aloe Vera",
		ScientificName: "Aloe barbadensis miller",
		Description:    "Aloe Vera is a succulent plant with thick, fleshy leaves filled with a clear gel. It has been used for its medicinal properties for thousands of years.",
		Usage:          "Aloe gel is applied for burns and skin issues; aloe juice is consumed for digestion.",
		Category:       "Ayurvedic Medicinal Plants",
		Image:          "/static/images/aloe_vera.png",
		Benefits:       []string{"Cooling", "Anti-inflammatory", "Antioxidant", "Wound-healing", "Soothes burns", "Promotes digestion", "Hydrates skin", "Supports immunity"},
	},
	{
		Name:           "Turmeric",
		ScientificName: "Curcuma longa",
		Description:    "Turmeric is a rhizomatous herbaceous perennial plant of the ginger family. The bright yellow spice is widely used in cooking and has potent medicinal properties.",
		Usage:          "Used in cooking, taken with milk, or applied as a paste for wound healing.",
		Category:       "Ayurvedic Medicinal Plants",
		Image:          "/static/images/turmeric.png",
		Benefits:       []string{"Anti-inflammatory", "Antioxidant", "Antimicrobial", "Reduces inflammation", "Boosts immunity", "Supports liver health", "Aids digestion"},
	},
	{
		Name:           "Ginger",
		ScientificName: "Zingiber officinale",
		Description:    "Ginger is a flowering plant whose rhizome, ginger root or ginger, is widely used as a spice and a folk medicine. It has a warm, spicy flavor and aroma.",
		Usage:          "Consumed fresh, dried, or in tea for digestion and colds.",
		Category:       "Ayurvedic Medicinal Plants",
		Image:          "/static/images/ginger.png",
		Benefits:       []string{"Anti-nausea", "Digestive stimulant", "Anti-inflammatory", "Aids digestion", "Relieves nausea", "Reduces muscle pain", "Supports cardiovascular health"},
	},
	{
		Name:           "Amla",
		ScientificName: "Phyllanthus emblica",
		Description:    "Amla, also known as Indian Gooseberry, is a deciduous tree that has edible fruit with a high vitamin C content. It's considered one of the most important medicinal plants in Ayurveda.",
		Usage:          "Eaten raw, in juice, or as dried powder.",
		Category:       "Ayurvedic Medicinal Plants",
		Image:          "/static/images/amla.png",
		Benefits:       []string{"Rich in vitamin C", "Antioxidant", "Immune-boosting", "Improves digestion", "Enhances skin health", "Strengthens immunity", "Regulates blood sugar"},
	},
	{
		Name:           "Brahmi",
		ScientificName: "Bacopa monnieri",
		Description:    "Brahmi is a creeping herb with small white flowers that grows in wetlands and muddy shores. It's one of the most powerful brain tonics in Ayurveda.",
		Usage:          "Consumed as a tea, powder, or in Ayurvedic formulations.",
		Category:       "Ayurvedic Medicinal Plants",
		Image:          "/static/images/brahmi.png",
		Benefits:       []string{"Brain tonic", "Anti-anxiety", "Memory-enhancing", "Improves cognitive function", "Reduces stress", "Supports nervous system health"},
	},
	{
		Name:           "Giloy",
		ScientificName: "Tinospora cordifolia",
		Description:    "Giloy is a herbaceous vine of the family Menispermaceae. In Ayurveda, it is known as 'Amrita', which means 'the root of immortality'.",
		Usage:          "Consumed as juice, powder, or in decoction.",
		Category:       "Ayurvedic Medicinal Plants",
		Image:          "/static/images/giloy.png",
		Benefits:       []string{"Immunomodulatory", "Antipyretic", "Anti-inflammatory", "Boosts immunity", "Treats fever", "Supports liver health", "Detoxifies the body"},
	},
	{
		Name:           "Lemongrass",
		ScientificName: "Cymbopogon citratus",
		Description:    "Lemongrass is a tall perennial grass with a fresh, lemony aroma and a citrus flavor. It's a staple in Thai and other Asian cuisines and has many medicinal uses.",
		Usage:          "Used in tea, essential oil, or fresh leaves in cooking.",
		Category:       "Ayurvedic Medicinal Plants",
		Image:          "/static/images/lemongrass.png",
		Benefits:       []string{"Antioxidant", "Antibacterial", "Digestive aid", "Reduces stress", "Aids digestion", "Boosts metabolism", "Relieves headaches"},
	},
	{
		Name:           "Mulethi",
		ScientificName: "Glycyrrhiza glabra",
		Description:    "Mulethi, also known as Licorice Root, has been used in traditional medicine in many parts of the world. It has a sweet taste and is often used in confectionery.",
		Usage:          "Consumed as tea, powder, or herbal syrup.",
		Category:       "Ayurvedic Medicinal Plants",
		Image:          "/static/images/mulethi.png",
		Benefits:       []string{"Anti-inflammatory", "Respiratory tonic", "Digestive aid", "Soothes sore throat", "Improves digestion", "Boosts respiratory health"},
	},
}

var remedies = []remedyData{
	{
		CreateRemedyRequest: types.CreateRemedyRequest{
			Name:             "Golden Milk",
			ShortDescription: "A soothing turmeric drink with anti-inflammatory properties",
			Description:      "Golden Milk is a traditional Ayurvedic drink that combines turmeric with milk and other spices. It has powerful anti-inflammatory and antioxidant properties.",
			Difficulty:       "Easy",
			Usage:            "Drink warm before bedtime to promote relaxation and reduce inflammation. Can be consumed daily.",
			Category:         "Anti-inflammatory Preparations",
			Ingredients: []string{
				"Milk or plant-based milk - 1 cup",
				"Ground turmeric - 1/2 teaspoon",
				"Ground cinnamon - 1/4 teaspoon",
				"Ground ginger - 1/4 teaspoon",
				"Black pepper - A pinch",
				"Honey or maple syrup (optional) - to taste",
			},
			PreparationSteps: []string{
				"In a small saucepan, heat the milk over medium heat until it's warm but not boiling.",
				"Add turmeric, cinnamon, ginger, and black pepper to the milk.",
				"Whisk to combine and continue to heat for about 3-5 minutes.",
				"Remove from heat and add honey or maple syrup if desired.",
				"Strain if needed and serve warm.",
			},
			Benefits: []string{"Reduces inflammation", "Improves sleep quality", "Supports immune system", "Aids digestion"},
		},
		DoctorEmail: "deepak.chopra@example.com",
	},
	{
		CreateRemedyRequest: types.CreateRemedyRequest{
			Name:             "Tulsi Tea for Cold & Flu",
			ShortDescription: "A healing herbal tea to boost immunity and relieve cold symptoms",
			Description:      "Tulsi (Holy Basil) is considered a sacred herb in Ayurveda with powerful immunomodulatory properties. This simple tea preparation helps combat cold, flu, and respiratory infections.",
			Difficulty:       "Easy",
			Usage:            "Drink 2-3 cups daily when experiencing cold symptoms, or 1 cup daily for prevention.",
			Category:         "Cold & Flu Remedies",
			Ingredients: []string{
				"5-6 fresh tulsi (holy basil) leaves",
				"1 cup water",
				"1/2 tsp honey (optional)",
				"1/4 tsp black pepper (optional)",
			},
			PreparationSteps: []string{
				"Boil the tulsi leaves in 1 cup of water for 5 minutes.",
				"Strain and pour into a cup.",
				"Add honey and black pepper if desired.",
				"Drink warm to relieve cold, cough, and flu symptoms.",
			},
			Benefits: []string{"Strengthens immunity", "Relieves cough and congestion", "Reduces fever", "Soothes sore throat"},
		},
		DoctorEmail: "vasant.lad@example.com",
	},
	{
		CreateRemedyRequest: types.CreateRemedyRequest{
			Name:             "Neem Face Pack",
			ShortDescription: "Natural remedy for acne and skin problems",
			Description:      "Neem face pack is a traditional Ayurvedic remedy for various skin issues. Neem's antibacterial and antifungal properties make it excellent for treating acne, eczema, and other skin conditions.",
			Difficulty:       "Easy",
			Usage:            "Apply to clean face, avoid eye area. Leave on for 15-20 minutes, then rinse. Use 1-2 times per week.",
			Category:         "Skin Care Remedies",
			Ingredients: []string{
				"2 tablespoons neem powder",
				"1 tablespoon sandalwood powder",
				"1 teaspoon turmeric powder",
				"Rose water (as needed)",
			},
			PreparationSteps: []string{
				"Mix neem powder, sandalwood powder, and turmeric powder in a small bowl.",
				"Add enough rose water to form a smooth paste.",
				"Ensure the mixture has a spreadable consistency, not too thick or thin.",
				"Apply evenly to clean face, avoiding the eye area.",
				"Let it dry for 15-20 minutes.",
				"Rinse off with cool water, gently massaging in circular motions.",
			},
			Benefits: []string{"Treats acne", "Reduces inflammation", "Removes excess oil", "Improves skin texture"},
		},
	},
	{
		CreateRemedyRequest: types.CreateRemedyRequest{
			Name:             "Ginger-Honey Tea",
			ShortDescription: "Effective remedy for colds and sore throats",
			Description:      "Ginger-honey tea is a simple yet effective remedy for colds, sore throats, and congestion. Ginger's warming properties help clear congestion, while honey soothes irritated throat tissues.",
			Difficulty:       "Easy",
			Usage:            "Drink warm, 2-3 times a day during illness. Can also be consumed regularly for general health.",
			Category:         "Cold & Flu Remedies",
			Ingredients: []string{
				"1-inch piece of fresh ginger, sliced or grated",
				"1 cup water",
				"1 tablespoon honey",
				"1/2 lemon, juiced (optional)",
				"A pinch of cinnamon (optional)",
			},
			PreparationSteps: []string{
				"Bring water to a boil in a small saucepan.",
				"Add sliced or grated ginger and reduce heat to low.",
				"Simmer for 5-10 minutes (longer for stronger tea).",
				"Remove from heat and strain into a cup.",
				"Add honey and lemon juice if using.",
				"Stir well and drink while warm.",
			},
			Benefits: []string{"Relieves sore throat", "Reduces congestion", "Boosts immunity", "Aids digestion"},
		},
		DoctorEmail: "vasant.lad@example.com",
	},
}
