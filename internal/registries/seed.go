package registries

import (
	"time"

	"github.com/regionboard/backend/internal/models"
)

// Seed data for a fresh process. Only main uses these; tests build empty
// registries so no state leaks between them.

// SeedTasks returns the initial task fixtures.
func SeedTasks() []models.Task {
	return []models.Task{
		{
			ID:          1,
			Titre:       "Préparer rapport annuel",
			Date:        models.NewDate(2025, time.September, 10),
			Statut:      models.TaskStatusInProgress,
			Priorite:    models.TaskPriorityHigh,
			Description: "Rapport des activités de l'année 2025",
			Projet:      "Projet Développement Rural",
			Assignee:    "Jean Dupont",
		},
		{
			ID:          2,
			Titre:       "Réunion projet infrastructure",
			Date:        models.NewDate(2025, time.September, 12),
			Statut:      models.TaskStatusPlanned,
			Priorite:    models.TaskPriorityMedium,
			Description: "Réunion de coordination pour le projet d'infrastructure",
			Projet:      "Projet Infrastructure Routière",
			Assignee:    "Marie Lambert",
		},
		{
			ID:          3,
			Titre:       "Vérifier budget santé",
			Date:        models.NewDate(2025, time.September, 15),
			Statut:      models.TaskStatusCompleted,
			Priorite:    models.TaskPriorityLow,
			Description: "Vérification du budget alloué au projet santé",
			Projet:      "Projet Santé Communautaire",
			Assignee:    "Paul Martin",
		},
		{
			ID:          4,
			Titre:       "Commander matériel construction",
			Date:        models.NewDate(2025, time.September, 5),
			Statut:      models.TaskStatusInProgress,
			Priorite:    models.TaskPriorityHigh,
			Description: "Commande des matériaux pour la construction de l'école",
			Projet:      "Construction école primaire",
			Assignee:    "Jean Dupont",
		},
		{
			ID:          5,
			Titre:       "Contacter fournisseurs eau",
			Date:        models.NewDate(2025, time.September, 8),
			Statut:      models.TaskStatusLate,
			Priorite:    models.TaskPriorityMedium,
			Description: "Prise de contact avec les fournisseurs pour le projet eau potable",
			Projet:      "Installation eau potable",
			Assignee:    "Marie Lambert",
		},
	}
}

// SeedProjects returns the initial project fixtures.
func SeedProjects() []models.Project {
	fin1 := models.NewDate(2025, time.December, 15)
	fin2 := models.NewDate(2026, time.February, 28)
	fin3 := models.NewDate(2025, time.October, 5)
	return []models.Project{
		{
			ID:          1,
			Nom:         "Construction école primaire",
			DateDebut:   models.NewDate(2025, time.September, 1),
			Statut:      models.ProjectStatusInProgress,
			DateFin:     &fin1,
			Budget:      "150 000 Ariary",
			Progression: 65,
			Description: "Construction d'une école primaire dans le village d'Ankazo",
		},
		{
			ID:          2,
			Nom:         "Réhabilitation route RN7",
			DateDebut:   models.NewDate(2025, time.August, 15),
			Statut:      models.ProjectStatusPlanned,
			DateFin:     &fin2,
			Budget:      "850 000 Ariary",
			Progression: 0,
			Description: "Réhabilitation de 15km de la Route Nationale 7",
		},
		{
			ID:          3,
			Nom:         "Installation eau potable",
			DateDebut:   models.NewDate(2025, time.July, 20),
			Statut:      models.ProjectStatusCompleted,
			DateFin:     &fin3,
			Budget:      "120 000 Ariary",
			Progression: 100,
			Description: "Installation de système d'eau potable dans 3 villages",
		},
	}
}

// SeedBudgets returns the initial budget fixtures.
func SeedBudgets() []models.Budget {
	return []models.Budget{
		{
			ID:            1,
			Nom:           "Budget Développement Rural",
			Montant:       "500 000 Ariary",
			Statut:        models.BudgetStatusApproved,
			Date:          models.NewDate(2025, time.January, 15),
			ProjetAssocie: "Projet Développement Rural",
			Description:   "Budget alloué au développement des zones rurales de la région",
		},
		{
			ID:            2,
			Nom:           "Budget Santé Communautaire",
			Montant:       "750 000 Ariary",
			Statut:        models.BudgetStatusInProgress,
			Date:          models.NewDate(2025, time.February, 10),
			ProjetAssocie: "Projet Santé Communautaire",
			Description:   "Financement des centres de santé communautaires",
		},
		{
			ID:            3,
			Nom:           "Budget Infrastructure Routière",
			Montant:       "1 200 000 Ariary",
			Statut:        models.BudgetStatusPlanned,
			Date:          models.NewDate(2025, time.March, 5),
			ProjetAssocie: "Projet Infrastructure Routière",
			Description:   "Développement et entretien des routes régionales",
		},
	}
}

// SeedDocuments returns the initial document fixtures.
func SeedDocuments() []models.Document {
	return []models.Document{
		{ID: 1, Titre: "Rapport Budget 2024", Fichier: "budget2024.pdf"},
		{ID: 2, Titre: "Plan d'Action 2025", Fichier: "plan_action_2025.pdf"},
		{ID: 3, Titre: "Compte rendu réunion", Fichier: "reunion.docx"},
	}
}

// SeedMapPoints returns the project markers for the cartography page.
func SeedMapPoints() []models.MapPoint {
	return []models.MapPoint{
		{ID: 1, Nom: "École A", Latitude: -21.45, Longitude: 47.08, Projet: "Construction école"},
		{ID: 2, Nom: "Route B", Latitude: -21.47, Longitude: 47.05, Projet: "Réhabilitation route"},
		{ID: 3, Nom: "Pompe C", Latitude: -21.49, Longitude: 47.10, Projet: "Installation eau potable"},
	}
}

// SeedReports returns the canned reports list.
func SeedReports() []models.Report {
	return []models.Report{
		{ID: 1, Nom: "Rapport Budget Éducation", Fichier: "rapport_education.pdf"},
		{ID: 2, Nom: "Rapport Budget Santé", Fichier: "rapport_sante.pdf"},
		{ID: 3, Nom: "Rapport Budget Infrastructure", Fichier: "rapport_infrastructure.pdf"},
	}
}

// SeedFieldTools returns the entries for the field tools page.
func SeedFieldTools() []models.FieldTool {
	return []models.FieldTool{
		{ID: 1, Nom: "Collecte de données terrain", Description: "Formulaires de collecte pour les agents de terrain"},
		{ID: 2, Nom: "Suivi GPS des chantiers", Description: "Relevés de position des chantiers en cours"},
		{ID: 3, Nom: "Rapport photo", Description: "Dépôt de photos géolocalisées des ouvrages"},
	}
}

// SeedProjectReviews returns the budget/timeline rows fed to the anomaly
// report.
func SeedProjectReviews() []models.ProjectReview {
	return []models.ProjectReview{
		{ID: 1, Nom: "Projet A", Budget: 500000, Executed: 520000, Delai: 30, DelaiReal: 40},
		{ID: 2, Nom: "Projet B", Budget: 300000, Executed: 250000, Delai: 20, DelaiReal: 18},
		{ID: 3, Nom: "Projet C", Budget: 400000, Executed: 600000, Delai: 25, DelaiReal: 50},
	}
}
