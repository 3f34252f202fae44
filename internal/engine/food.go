package engine

// estimateCoffee assumes one single-use cup per visit; savings come from a reusable cup.
func estimateCoffee(in CoffeeInput) calculation {
	cups := in.DaysPerWeek * WeeksPerYear
	annual := cups * CupFactorKg
	return calculation{
		emissions: annual,
		savings:   annual * ReusableCupSavingRate,
		tips:      copyTips(coffeeTips),
	}
}

// estimateGrocery assumes one beef serving per night; savings come from a plant-based swap.
func estimateGrocery(in GroceryInput) calculation {
	servings := in.NightsPerWeek * WeeksPerYear
	annual := servings * BeefServingFactorKg
	return calculation{
		emissions: annual,
		savings:   annual * PlantBasedSavingRate,
		tips:      copyTips(groceryTips),
	}
}
