// Package templates ships the built-in document catalogue: the French
// legal documents the product generates out of the box. Each template is
// plain data consumed by the registry; the loader in this package can add
// further templates from disk.
package templates

import "github.com/quillon/quillon/pkg/domain"

// Builtin returns a fresh copy of the built-in template set, in catalogue
// order. Callers get their own slice; the definitions themselves are
// never mutated by the engine.
func Builtin() []domain.Template {
	return []domain.Template{
		leaseTemplate(),
		ndaTemplate(),
		serviceTemplate(),
		powerOfAttorneyTemplate(),
		saleTemplate(),
	}
}

func leaseTemplate() domain.Template {
	return domain.Template{
		ID:            "bail-habitation",
		Name:          "Bail d'habitation",
		Description:   "Contrat de location pour un logement vide ou meublé, conforme à la loi du 6 juillet 1989.",
		Category:      domain.CategoryLease,
		EstimatedTime: "15 min",
		RequiredFields: []string{
			"type_location",
			"proprietaire_nom",
			"proprietaire_adresse",
			"locataire_nom",
			"logement_adresse",
			"logement_description",
			"superficie",
			"date_effet",
			"duree_bail",
			"loyer",
			"modalite_paiement",
		},
		Questions: []domain.Question{
			{
				ID:       "type_location",
				Text:     "Type de location",
				Type:     domain.QuestionSelect,
				Required: true,
				Options: []domain.Option{
					{Value: "vide", Label: "Location vide"},
					{Value: "meublee", Label: "Location meublée"},
				},
			},
			{
				ID:       "proprietaire_nom",
				Text:     "Nom complet du bailleur",
				Type:     domain.QuestionText,
				Required: true,
				Validation: &domain.Validation{
					MinLength: 3,
					MaxLength: 120,
				},
			},
			{
				ID:       "proprietaire_adresse",
				Text:     "Adresse du bailleur",
				Type:     domain.QuestionText,
				Required: true,
			},
			{
				ID:       "locataire_nom",
				Text:     "Nom complet du locataire",
				Type:     domain.QuestionText,
				Required: true,
				Validation: &domain.Validation{
					MinLength: 3,
					MaxLength: 120,
				},
			},
			{
				ID:       "logement_adresse",
				Text:     "Adresse du logement loué",
				Type:     domain.QuestionText,
				Required: true,
			},
			{
				ID:       "logement_description",
				Text:     "Description du logement (pièces, étage...)",
				Type:     domain.QuestionText,
				Required: true,
			},
			{
				ID:       "superficie",
				Text:     "Superficie habitable en m²",
				Type:     domain.QuestionNumber,
				Required: true,
			},
			{
				ID:       "date_effet",
				Text:     "Date de prise d'effet du bail",
				Type:     domain.QuestionDate,
				Required: true,
			},
			{
				ID:       "duree_bail",
				Text:     "Durée du bail",
				Type:     domain.QuestionSelect,
				Required: true,
				Options: []domain.Option{
					{Value: "1_an", Label: "1 an (meublé)"},
					{Value: "3_ans", Label: "3 ans (location vide)"},
					{Value: "6_ans", Label: "6 ans (bailleur personne morale)"},
					{Value: "9_ans", Label: "9 ans"},
				},
			},
			{
				ID:       "loyer",
				Text:     "Loyer mensuel hors charges (en euros)",
				Type:     domain.QuestionNumber,
				Required: true,
			},
			{
				ID:       "modalite_paiement",
				Text:     "Modalités de paiement du loyer",
				Type:     domain.QuestionText,
				Required: true,
				Help:     "Par exemple : virement bancaire le 5 de chaque mois.",
			},
			{
				ID:   "depot_garantie",
				Text: "Dépôt de garantie (en euros, laisser vide si aucun)",
				Type: domain.QuestionNumber,
			},
			{
				ID:   "travaux",
				Text: "Travaux à la charge du bailleur avant l'entrée dans les lieux",
				Type: domain.QuestionMultiline,
			},
			{
				ID:   "colocation",
				Text: "S'agit-il d'une colocation ?",
				Type: domain.QuestionBoolean,
			},
			{
				ID:        "colocataires_noms",
				Text:      "Noms des colocataires",
				Type:      domain.QuestionText,
				DependsOn: "colocation",
			},
			{
				ID:   "garant",
				Text: "Une caution solidaire se porte-t-elle garante ?",
				Type: domain.QuestionBoolean,
			},
			{
				ID:        "garant_nom",
				Text:      "Nom complet de la caution",
				Type:      domain.QuestionText,
				DependsOn: "garant",
			},
			{
				ID:        "garant_adresse",
				Text:      "Adresse de la caution",
				Type:      domain.QuestionText,
				DependsOn: "garant",
			},
		},
		DocumentBody: `CONTRAT DE LOCATION À USAGE D'HABITATION

ENTRE LES SOUSSIGNÉS

Le bailleur : {{proprietaire_nom}}, demeurant {{proprietaire_adresse}},
ci-après dénommé « le bailleur »,

Le locataire : {{locataire_nom}},
ci-après dénommé « le locataire »,

IL A ÉTÉ CONVENU CE QUI SUIT :

ARTICLE 1 - OBJET DE LA LOCATION
Le bailleur donne en location ({{type_location}}) au locataire le logement situé {{logement_adresse}}.
Description : {{logement_description}}, d'une superficie habitable de {{superficie}} m².

ARTICLE 2 - DURÉE DU BAIL
Le présent bail est consenti pour une durée de {{duree_bail}} à compter du {{date_effet}}.
À son expiration, il se renouvellera par tacite reconduction dans les conditions prévues par la loi.

ARTICLE 3 - LOYER
Le loyer mensuel est fixé à {{loyer}} euros, charges non comprises.
Modalités de paiement : {{modalite_paiement}}.

{{#depot_garantie}}ARTICLE 4 - DÉPÔT DE GARANTIE
Le locataire verse ce jour entre les mains du bailleur un dépôt de garantie de {{depot_garantie}} euros, restituable dans les conditions prévues par la loi n° 89-462 du 6 juillet 1989.{{/depot_garantie}}

{{#travaux}}ARTICLE 5 - TRAVAUX
Le bailleur s'engage à réaliser, avant l'entrée dans les lieux, les travaux suivants :
{{travaux}}{{/travaux}}

{{#colocation}}CLAUSE DE COLOCATION
Le logement est loué en colocation avec : {{colocataires_noms}}.
Les colocataires sont tenus solidairement de l'ensemble des obligations du présent bail.{{/colocation}}

{{#garant}}ENGAGEMENT DE CAUTION SOLIDAIRE
{{garant_nom}}, demeurant {{garant_adresse}}, déclare se porter caution solidaire du locataire pour l'exécution des obligations résultant du présent bail.{{/garant}}

Fait en deux exemplaires originaux, dont un remis à chacune des parties.

Le bailleur,
{{proprietaire_nom}}

Le locataire,
{{locataire_nom}}`,
	}
}

func ndaTemplate() domain.Template {
	return domain.Template{
		ID:            "accord-confidentialite",
		Name:          "Accord de confidentialité",
		Description:   "Engagement réciproque de non-divulgation entre deux parties (NDA).",
		Category:      domain.CategoryContract,
		EstimatedTime: "10 min",
		RequiredFields: []string{
			"partie1_nom",
			"partie1_adresse",
			"partie2_nom",
			"partie2_adresse",
			"objet",
			"duree_confidentialite",
			"date_signature",
			"lieu_signature",
		},
		Questions: []domain.Question{
			{ID: "partie1_nom", Text: "Nom de la première partie", Type: domain.QuestionText, Required: true},
			{ID: "partie1_adresse", Text: "Adresse de la première partie", Type: domain.QuestionText, Required: true},
			{ID: "partie2_nom", Text: "Nom de la seconde partie", Type: domain.QuestionText, Required: true},
			{ID: "partie2_adresse", Text: "Adresse de la seconde partie", Type: domain.QuestionText, Required: true},
			{
				ID:       "objet",
				Text:     "Objet des échanges couverts par la confidentialité",
				Type:     domain.QuestionMultiline,
				Required: true,
			},
			{
				ID:       "duree_confidentialite",
				Text:     "Durée de l'obligation de confidentialité",
				Type:     domain.QuestionSelect,
				Required: true,
				Options: []domain.Option{
					{Value: "2 ans", Label: "2 ans"},
					{Value: "3 ans", Label: "3 ans"},
					{Value: "5 ans", Label: "5 ans"},
					{Value: "10 ans", Label: "10 ans"},
				},
			},
			{ID: "date_signature", Text: "Date de signature", Type: domain.QuestionDate, Required: true},
			{ID: "lieu_signature", Text: "Lieu de signature", Type: domain.QuestionText, Required: true},
			{ID: "penalite", Text: "Prévoir une clause pénale en cas de violation ?", Type: domain.QuestionBoolean},
			{
				ID:        "penalite_montant",
				Text:      "Montant forfaitaire de la pénalité (en euros)",
				Type:      domain.QuestionNumber,
				DependsOn: "penalite",
			},
		},
		DocumentBody: `ACCORD DE CONFIDENTIALITÉ

ENTRE

{{partie1_nom}}, dont l'adresse est {{partie1_adresse}}, d'une part,

ET

{{partie2_nom}}, dont l'adresse est {{partie2_adresse}}, d'autre part,

PRÉAMBULE
Les parties souhaitent échanger des informations dans le cadre suivant :
{{objet}}

ARTICLE 1 - INFORMATIONS CONFIDENTIELLES
Sont confidentielles toutes les informations, quel qu'en soit le support, communiquées par une partie à l'autre dans le cadre de l'objet ci-dessus.

ARTICLE 2 - OBLIGATIONS
Chaque partie s'interdit de divulguer les informations confidentielles de l'autre partie à tout tiers et de les utiliser à d'autres fins que l'objet du présent accord.

ARTICLE 3 - DURÉE
Les obligations de confidentialité demeurent en vigueur pendant {{duree_confidentialite}} à compter de la date de signature.

{{#penalite}}ARTICLE 4 - CLAUSE PÉNALE
Toute violation du présent accord rendra la partie défaillante redevable d'une indemnité forfaitaire de {{penalite_montant}} euros, sans préjudice de tous dommages et intérêts complémentaires.{{/penalite}}

Fait à {{lieu_signature}}, le {{date_signature}}, en deux exemplaires originaux.

{{partie1_nom}}                    {{partie2_nom}}`,
	}
}

func serviceTemplate() domain.Template {
	return domain.Template{
		ID:            "contrat-prestation",
		Name:          "Contrat de prestation de services",
		Description:   "Contrat entre un prestataire et son client : mission, prix et facturation.",
		Category:      domain.CategoryContract,
		EstimatedTime: "12 min",
		RequiredFields: []string{
			"prestataire_nom",
			"prestataire_siret",
			"client_nom",
			"description_prestation",
			"montant",
			"modalite_facturation",
			"date_debut",
		},
		Questions: []domain.Question{
			{ID: "prestataire_nom", Text: "Nom ou raison sociale du prestataire", Type: domain.QuestionText, Required: true},
			{
				ID:       "prestataire_siret",
				Text:     "Numéro SIRET du prestataire",
				Type:     domain.QuestionText,
				Required: true,
				Validation: &domain.Validation{
					Pattern: `^\d{14}$`,
					Message: "un numéro SIRET comporte exactement 14 chiffres",
				},
			},
			{ID: "client_nom", Text: "Nom ou raison sociale du client", Type: domain.QuestionText, Required: true},
			{
				ID:       "description_prestation",
				Text:     "Description de la prestation",
				Type:     domain.QuestionMultiline,
				Required: true,
				Validation: &domain.Validation{
					MinLength: 10,
				},
			},
			{ID: "montant", Text: "Montant total hors taxes (en euros)", Type: domain.QuestionNumber, Required: true},
			{
				ID:       "modalite_facturation",
				Text:     "Modalité de facturation",
				Type:     domain.QuestionSelect,
				Required: true,
				Options: []domain.Option{
					{Value: "forfait", Label: "Au forfait"},
					{Value: "temps passé", Label: "Au temps passé"},
				},
			},
			{ID: "date_debut", Text: "Date de début de la mission", Type: domain.QuestionDate, Required: true},
			{ID: "date_fin", Text: "Date de fin prévue (laisser vide si indéterminée)", Type: domain.QuestionDate},
			{ID: "deplacements", Text: "Des frais de déplacement sont-ils refacturés ?", Type: domain.QuestionBoolean},
			{
				ID:        "deplacements_conditions",
				Text:      "Conditions de refacturation des déplacements",
				Type:      domain.QuestionText,
				DependsOn: "deplacements",
			},
		},
		DocumentBody: `CONTRAT DE PRESTATION DE SERVICES

ENTRE
{{prestataire_nom}} (SIRET {{prestataire_siret}}), ci-après « le prestataire »,
ET
{{client_nom}}, ci-après « le client »,

ARTICLE 1 - OBJET
Le prestataire s'engage à réaliser pour le client la prestation suivante :
{{description_prestation}}

ARTICLE 2 - DURÉE
La mission débute le {{date_debut}}.
{{#date_fin}}Elle prendra fin au plus tard le {{date_fin}}.{{/date_fin}}

ARTICLE 3 - PRIX ET FACTURATION
Le prix de la prestation est fixé à {{montant}} euros hors taxes, facturé selon la modalité suivante : {{modalite_facturation}}.

{{#deplacements}}ARTICLE 4 - FRAIS DE DÉPLACEMENT
Les frais de déplacement sont refacturés au client dans les conditions suivantes : {{deplacements_conditions}}.{{/deplacements}}

ARTICLE 5 - RESPONSABILITÉ
Le prestataire est tenu à une obligation de moyens dans l'exécution de la mission.

Fait en deux exemplaires originaux.

Le prestataire,                    Le client,
{{prestataire_nom}}                {{client_nom}}`,
	}
}

func powerOfAttorneyTemplate() domain.Template {
	return domain.Template{
		ID:            "procuration",
		Name:          "Procuration",
		Description:   "Mandat donné à un tiers pour accomplir un acte déterminé.",
		Category:      domain.CategoryPowerOfAttorney,
		EstimatedTime: "8 min",
		RequiredFields: []string{
			"mandant_nom",
			"mandant_adresse",
			"mandataire_nom",
			"mandataire_adresse",
			"objet_procuration",
			"date_debut",
			"lieu_signature",
		},
		Questions: []domain.Question{
			{ID: "mandant_nom", Text: "Nom complet du mandant (celui qui donne pouvoir)", Type: domain.QuestionText, Required: true},
			{ID: "mandant_adresse", Text: "Adresse du mandant", Type: domain.QuestionText, Required: true},
			{ID: "mandant_naissance", Text: "Date de naissance du mandant", Type: domain.QuestionDate},
			{ID: "mandataire_nom", Text: "Nom complet du mandataire (celui qui reçoit pouvoir)", Type: domain.QuestionText, Required: true},
			{ID: "mandataire_adresse", Text: "Adresse du mandataire", Type: domain.QuestionText, Required: true},
			{
				ID:       "objet_procuration",
				Text:     "Actes que le mandataire est autorisé à accomplir",
				Type:     domain.QuestionMultiline,
				Required: true,
			},
			{ID: "date_debut", Text: "Date de prise d'effet", Type: domain.QuestionDate, Required: true},
			{ID: "duree_limitee", Text: "La procuration a-t-elle une date de fin ?", Type: domain.QuestionBoolean},
			{
				ID:        "date_fin",
				Text:      "Date de fin de la procuration",
				Type:      domain.QuestionDate,
				DependsOn: "duree_limitee",
			},
			{ID: "lieu_signature", Text: "Lieu de signature", Type: domain.QuestionText, Required: true},
		},
		DocumentBody: `PROCURATION

Je soussigné(e) {{mandant_nom}}, demeurant {{mandant_adresse}},{{#mandant_naissance}} né(e) le {{mandant_naissance}},{{/mandant_naissance}}

donne par la présente pouvoir à :

{{mandataire_nom}}, demeurant {{mandataire_adresse}},

à l'effet d'accomplir en mon nom et pour mon compte les actes suivants :
{{objet_procuration}}

La présente procuration prend effet le {{date_debut}}.
{{#duree_limitee}}Elle prendra fin de plein droit le {{date_fin}}.{{/duree_limitee}}

Le mandataire accepte le présent mandat et s'engage à l'exécuter fidèlement.

Fait à {{lieu_signature}}, le {{date_debut}}.

Le mandant,                        Le mandataire,
{{mandant_nom}}                    {{mandataire_nom}}`,
	}
}

func saleTemplate() domain.Template {
	return domain.Template{
		ID:            "compromis-vente",
		Name:          "Compromis de vente",
		Description:   "Promesse synallagmatique de vente d'un bien immobilier.",
		Category:      domain.CategorySale,
		EstimatedTime: "20 min",
		RequiredFields: []string{
			"vendeur_nom",
			"vendeur_adresse",
			"acquereur_nom",
			"acquereur_adresse",
			"bien_adresse",
			"bien_description",
			"prix",
			"date_signature",
			"lieu_signature",
		},
		Questions: []domain.Question{
			{ID: "vendeur_nom", Text: "Nom complet du vendeur", Type: domain.QuestionText, Required: true},
			{ID: "vendeur_adresse", Text: "Adresse du vendeur", Type: domain.QuestionText, Required: true},
			{ID: "acquereur_nom", Text: "Nom complet de l'acquéreur", Type: domain.QuestionText, Required: true},
			{ID: "acquereur_adresse", Text: "Adresse de l'acquéreur", Type: domain.QuestionText, Required: true},
			{ID: "bien_adresse", Text: "Adresse du bien vendu", Type: domain.QuestionText, Required: true},
			{
				ID:       "bien_description",
				Text:     "Description du bien (nature, surface, lots...)",
				Type:     domain.QuestionMultiline,
				Required: true,
			},
			{ID: "prix", Text: "Prix de vente (en euros)", Type: domain.QuestionNumber, Required: true},
			{ID: "sequestre", Text: "Montant du dépôt de garantie séquestré (laisser vide si aucun)", Type: domain.QuestionNumber},
			{ID: "condition_pret", Text: "La vente est-elle conditionnée à l'obtention d'un prêt ?", Type: domain.QuestionBoolean},
			{
				ID:        "montant_pret",
				Text:      "Montant maximal du prêt sollicité (en euros)",
				Type:      domain.QuestionNumber,
				DependsOn: "condition_pret",
			},
			{ID: "notaire_nom", Text: "Nom du notaire chargé de l'acte (facultatif)", Type: domain.QuestionText},
			{ID: "date_signature", Text: "Date de signature du compromis", Type: domain.QuestionDate, Required: true},
			{ID: "lieu_signature", Text: "Lieu de signature", Type: domain.QuestionText, Required: true},
		},
		DocumentBody: `COMPROMIS DE VENTE

ENTRE LES SOUSSIGNÉS

{{vendeur_nom}}, demeurant {{vendeur_adresse}}, ci-après « le vendeur »,

{{acquereur_nom}}, demeurant {{acquereur_adresse}}, ci-après « l'acquéreur »,

ARTICLE 1 - DÉSIGNATION DU BIEN
Le vendeur vend à l'acquéreur, qui accepte, le bien situé {{bien_adresse}}.
Description : {{bien_description}}

ARTICLE 2 - PRIX
La vente est consentie moyennant le prix de {{prix}} euros.
{{#sequestre}}L'acquéreur verse ce jour, à titre de dépôt de garantie séquestré, la somme de {{sequestre}} euros, qui s'imputera sur le prix.{{/sequestre}}

{{#condition_pret}}ARTICLE 3 - CONDITION SUSPENSIVE DE PRÊT
La présente vente est conclue sous la condition suspensive de l'obtention par l'acquéreur d'un prêt immobilier d'un montant maximal de {{montant_pret}} euros. À défaut d'obtention, chaque partie retrouvera sa pleine liberté sans indemnité.{{/condition_pret}}

{{#notaire_nom}}L'acte authentique sera reçu par Maître {{notaire_nom}}.{{/notaire_nom}}

Fait à {{lieu_signature}}, le {{date_signature}}, en deux exemplaires originaux.

Le vendeur,                        L'acquéreur,
{{vendeur_nom}}                    {{acquereur_nom}}`,
	}
}
