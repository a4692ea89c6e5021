package validators

import "go.mongodb.org/mongo-driver/bson"

var FlightValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"flight_number",
			"dep_date",
			"arr_date",
			"dep_code",
			"arr_code",
			"plane_type",
			"price",
			"available",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"flight_number": bson.M{
				"bsonType":  "string",
				"minLength": 3,
				"maxLength": 10,
			},

			"dep_date": bson.M{
				"bsonType": "date",
			},

			"arr_date": bson.M{
				"bsonType": "date",
			},

			"dep_code": bson.M{
				"bsonType":  "string",
				"minLength": 3,
				"maxLength": 3,
			},

			"arr_code": bson.M{
				"bsonType":  "string",
				"minLength": 3,
				"maxLength": 3,
			},

			"plane_type": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 20,
			},

			"price": bson.M{
				"bsonType": []string{"double", "int", "long", "decimal"},
				"minimum":  0,
			},

			"available": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  0,
			},

			"occupied_seats": bson.M{
				"bsonType": "array",
				"items": bson.M{
					"bsonType": "string",
				},
			},

			"is_offer": bson.M{
				"bsonType": "bool",
			},
		},
	},
}

var SeatMapValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"plane_type",
			"grid",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"plane_type": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 20,
			},

			"grid": bson.M{
				"bsonType": "array",
				"items": bson.M{
					"bsonType": "array",
					"items": bson.M{
						"bsonType": "string",
					},
				},
			},
		},
	},
}

var AirportValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"code",
			"name",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"code": bson.M{
				"bsonType":  "string",
				"minLength": 3,
				"maxLength": 3,
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},
		},
	},
}
