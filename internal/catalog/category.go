package catalog

// ProcessCategory is the organizational process domain a record's originating
// process belongs to. It is the top layer of the provincial process reference
// architecture and one half of every retention schedule key. The set is
// closed: categories are referenced, never created at runtime.
type ProcessCategory string

const (
	// Administrative and supporting processes.
	CategoryGovernance            ProcessCategory = "governance"
	CategoryStrategy              ProcessCategory = "strategy"
	CategoryCorporateControl      ProcessCategory = "corporate_control"
	CategoryHumanResources        ProcessCategory = "human_resources"
	CategoryFinance               ProcessCategory = "finance"
	CategoryInformationManagement ProcessCategory = "information_management"
	CategoryFacilities            ProcessCategory = "facilities"
	CategoryCommunication         ProcessCategory = "communication"

	// Spatial development.
	CategorySpatialPlanning      ProcessCategory = "spatial_planning"
	CategoryEnvironmentalPermits ProcessCategory = "environmental_permits"
	CategoryLandAffairs          ProcessCategory = "land_affairs"

	// Environment and sustainability.
	CategoryEnvironment     ProcessCategory = "environment"
	CategoryEnergyClimate   ProcessCategory = "energy_climate"
	CategoryNatureLandscape ProcessCategory = "nature_landscape"
	CategoryWater           ProcessCategory = "water"

	// Traffic and transport.
	CategoryTraffic         ProcessCategory = "traffic"
	CategoryPublicTransport ProcessCategory = "public_transport"

	// Economy and society.
	CategoryEconomy           ProcessCategory = "economy"
	CategoryTourismRecreation ProcessCategory = "tourism_recreation"
	CategoryCultureSports     ProcessCategory = "culture_sports"
	CategoryHousing           ProcessCategory = "housing"
	CategoryPublicHealth      ProcessCategory = "public_health"

	// Rural area.
	CategoryRuralArea   ProcessCategory = "rural_area"
	CategoryAgriculture ProcessCategory = "agriculture"

	// Safety.
	CategoryPublicSafety      ProcessCategory = "public_safety"
	CategoryEmergencyServices ProcessCategory = "emergency_services"

	// International.
	CategoryInternational ProcessCategory = "international"
)

// Categories returns every process category. The order is stable and follows
// the reference architecture grouping.
func Categories() []ProcessCategory {
	return []ProcessCategory{
		CategoryGovernance,
		CategoryStrategy,
		CategoryCorporateControl,
		CategoryHumanResources,
		CategoryFinance,
		CategoryInformationManagement,
		CategoryFacilities,
		CategoryCommunication,
		CategorySpatialPlanning,
		CategoryEnvironmentalPermits,
		CategoryLandAffairs,
		CategoryEnvironment,
		CategoryEnergyClimate,
		CategoryNatureLandscape,
		CategoryWater,
		CategoryTraffic,
		CategoryPublicTransport,
		CategoryEconomy,
		CategoryTourismRecreation,
		CategoryCultureSports,
		CategoryHousing,
		CategoryPublicHealth,
		CategoryRuralArea,
		CategoryAgriculture,
		CategoryPublicSafety,
		CategoryEmergencyServices,
		CategoryInternational,
	}
}

// Valid reports whether the category is a known catalog value.
func (c ProcessCategory) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Description returns a human-readable description of the category.
func (c ProcessCategory) Description() string {
	switch c {
	case CategoryGovernance:
		return "executive decision making and advisory processes"
	case CategoryStrategy:
		return "strategic development of provincial policy"
	case CategoryCorporateControl:
		return "corporate steering, control and accountability"
	case CategoryHumanResources:
		return "HR, organizational development and personnel administration"
	case CategoryFinance:
		return "financial management, budgeting and accountability"
	case CategoryInformationManagement:
		return "information provisioning, information security and ICT"
	case CategoryFacilities:
		return "housing, procurement and facility services"
	case CategoryCommunication:
		return "communication, public information and media management"
	case CategorySpatialPlanning:
		return "provincial spatial planning and structural visions"
	case CategoryEnvironmentalPermits:
		return "permit issuing under the environmental planning act"
	case CategoryLandAffairs:
		return "land affairs, expropriation and real estate management"
	case CategoryEnvironment:
		return "environmental policy and permit issuing"
	case CategoryEnergyClimate:
		return "energy transition and climate policy"
	case CategoryNatureLandscape:
		return "nature conservation and landscape"
	case CategoryWater:
		return "water management and drainage"
	case CategoryTraffic:
		return "regional traffic and transport planning"
	case CategoryPublicTransport:
		return "public transport and concession granting"
	case CategoryEconomy:
		return "economic development and business-oriented policy"
	case CategoryTourismRecreation:
		return "tourism and recreation policy"
	case CategoryCultureSports:
		return "culture, sports and participation policy"
	case CategoryHousing:
		return "housing policy"
	case CategoryPublicHealth:
		return "public health and youth policy"
	case CategoryRuralArea:
		return "rural area and agrarian policy"
	case CategoryAgriculture:
		return "agricultural structure and rural development"
	case CategoryPublicSafety:
		return "public order and safety"
	case CategoryEmergencyServices:
		return "fire services and crisis management"
	case CategoryInternational:
		return "international cooperation and cross-border regions"
	}
	return string(c)
}
