package valuation

// Trading-post item ids used by the craft formulas.
const (
	// Unidentified gear
	itemRareUnidGear   = 83008
	itemCommonUnidGear = 85016
	itemUnidGear       = 84731

	// Refined and raw materials
	itemThickLeather      = 19729
	itemGossamerScrap     = 19745
	itemGossamerThread    = 19790
	itemSilkScrap         = 19748
	itemHardenedLeather   = 19732
	itemAncientWoodLog    = 19725
	itemCuredHardLeather  = 19737
	itemOrichalcumOre     = 19701
	itemEctoplasm         = 19721
	itemElaborateTotem    = 24300
	itemCrystallineDust   = 24277
	itemMithrilIngot      = 19684
	itemMithrilOre        = 19700
	itemElderWoodPlank    = 19709
	itemElderWoodLog      = 19722
	itemLargeClaw         = 24350
	itemPotentBlood       = 24294
	itemLargeBone         = 24341
	itemIntricateTotem    = 24299
	itemLargeFang         = 24356
	itemPotentVenomSac    = 24282
	itemLargeScale        = 24288
	itemPileLucentCrystal = 89271
	itemBarbedThorn       = 74202
	itemLucentMote        = 89140

	// Runes
	itemScholarRune      = 24836
	itemGuardianRune     = 24824
	itemDragonhunterRune = 74978

	// Relics
	itemRelicOfFireworks   = 100947
	itemRelicOfAristocracy = 100849
	itemRelicOfThief       = 100916

	// Symbols and charms
	itemSymbolOfEnh       = 89141
	itemSymbolOfPain      = 89182
	itemSymbolOfControl   = 89098
	itemCharmOfBrilliance = 89103
	itemCharmOfPotence    = 89258
	itemCharmOfSkill      = 89216

	// Loadstones and cores
	itemEvergreenLoadstone = 68942
	itemChargedLoadstone   = 24305
	itemCorruptedLoadstone = 24340
	itemDestroyerLoadstone = 24325
	itemOnyxLoadstone      = 24310
	itemOnyxCore           = 24309
	itemDestroyerCore      = 24324
	itemCorruptedCore      = 24339
	itemChargedCore        = 24304

	// Masterful malice
	itemWritMasterfulMalice   = 72510
	itemThesisMasterfulMalice = 76738
	itemPouchBlackPigments    = 70426
	itemPouchWhitePigments    = 75862
	itemJugOfWater            = 12156
)

// Per-use salvage kit costs in copper.
const (
	kitCopperFed   = 3.0
	kitRunecrafter = 30.0
	kitSilverFed   = 60.0
)

// taxRate is what remains of a sell price after the trading-post cut.
const taxRate = 0.85
