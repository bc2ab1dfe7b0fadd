package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// SendOTP godoc
// @Summary Send a one-time passcode
// @Description Generate a 4-digit OTP and dispatch it to the given mobile number
// @Tags CustomerAuth
// @Accept json
// @Produce json
// @Param request body object{mobile=string,isSignup=bool} true "10-digit mobile number and flow"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Failure 429 {object} object{error=string}
// @Router /v1/customer-auth/send-otp [post]
func (h *CustomerHandler) SendOTPDoc() {}

// VerifyOTP godoc
// @Summary Verify an OTP and sign in
// @Description Verify the passcode; a request carrying a name registers a new customer
// @Tags CustomerAuth
// @Accept json
// @Produce json
// @Param request body object{mobile=string,otp=string,name=string,email=string} true "Verification data"
// @Success 200 {object} object{token=string,customer=object}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /v1/customer-auth/verify-otp [post]
func (h *CustomerHandler) VerifyOTPDoc() {}

// GetProfile godoc
// @Summary Get current customer profile
// @Description Get the authenticated customer's profile
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{id=string,name=string,email=string,mobile=string,coins=int,address=object}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /v1/customer-auth/profile [get]
func (h *CustomerHandler) GetProfileDoc() {}

// UpdateProfile godoc
// @Summary Update current customer profile
// @Description Update name, email or the mirrored primary address
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,email=string,address=object} true "Update data"
// @Success 200 {object} object{id=string,name=string,email=string,mobile=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /v1/customer-auth/profile [put]
func (h *CustomerHandler) UpdateProfileDoc() {}

// ListAddresses godoc
// @Summary List the address book
// @Description List the authenticated customer's addresses in insertion order
// @Tags Addresses
// @Security BearerAuth
// @Produce json
// @Success 200 {array} object{id=string,name=string,houseNo=string,city=string,phone=string}
// @Failure 401 {object} object{error=string}
// @Router /v1/customer-auth/addresses [get]
func (h *CustomerHandler) ListAddressesDoc() {}

// CreateAddress godoc
// @Summary Add an address
// @Description Append a new entry to the address book; name, houseNo, city and phone are required
// @Tags Addresses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{label=string,name=string,houseNo=string,area=string,landmark=string,city=string,state=string,pincode=string,phone=string,isDefault=bool} true "Address data"
// @Success 201 {object} object{id=string,name=string,houseNo=string,city=string,phone=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /v1/customer-auth/addresses [post]
func (h *CustomerHandler) CreateAddressDoc() {}

// UpdateAddress godoc
// @Summary Edit an address
// @Description Replace an address book entry in place, keeping its position
// @Tags Addresses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Address ID"
// @Param request body object{label=string,name=string,houseNo=string,city=string,phone=string} true "Address data"
// @Success 200 {object} object{id=string,name=string,houseNo=string,city=string,phone=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /v1/customer-auth/addresses/{id} [put]
func (h *CustomerHandler) UpdateAddressDoc() {}

// DeleteAddress godoc
// @Summary Delete an address
// @Description Delete an address book entry; requires confirm=true, otherwise answers 409
// @Tags Addresses
// @Security BearerAuth
// @Produce json
// @Param id path string true "Address ID"
// @Param confirm query bool false "Deletion confirmation"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /v1/customer-auth/addresses/{id} [delete]
func (h *CustomerHandler) DeleteAddressDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{status=string,error=string}
// @Router /health [get]
func (h *CustomerHandler) HealthCheckDoc() {}
